package imagemeta

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/rwcarlsen/goexif/exif"

	"tagvault/internal/domain"
)

// Probe returns the pixel dimensions of an image file without decoding
// the full raster. JPEG EXIF orientations that rotate the image by a
// quarter turn swap width and height, so the reported size matches
// what a viewer shows.
func Probe(path string) (*domain.Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}

	dims := &domain.Dimensions{Width: cfg.Width, Height: cfg.Height}
	if format == "jpeg" && transposed(f) {
		dims.Width, dims.Height = dims.Height, dims.Width
	}
	return dims, nil
}

// transposed reports whether the file carries an EXIF orientation that
// transposes the displayed raster (values 5 through 8). Any failure to
// read the orientation means no swap.
func transposed(f *os.File) bool {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false
	}
	x, err := exif.Decode(f)
	if err != nil {
		return false
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return false
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return false
	}
	return orientation >= 5 && orientation <= 8
}
