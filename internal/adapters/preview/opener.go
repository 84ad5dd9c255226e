package preview

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.PreviewOpener by handing the image path to
// the platform's default file opener.
type Opener struct {
	catalogDir string
}

// NewOpener creates a preview opener scoped to the given catalog
// directory. Paths outside the catalog are refused.
func NewOpener(catalogDir string) *Opener {
	return &Opener{catalogDir: catalogDir}
}

// OpenFile opens an image in the system's default viewer
func (o *Opener) OpenFile(path string) error {
	if err := o.checkInside(path); err != nil {
		return err
	}

	cmd, err := viewerCommand(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// checkInside verifies the path points into the catalog directory
func (o *Opener) checkInside(path string) error {
	relPath, err := filepath.Rel(o.catalogDir, path)
	if err != nil {
		return fmt.Errorf("failed to get relative path: %w", err)
	}

	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return fmt.Errorf("image is outside the catalog: %s", path)
	}

	return nil
}

// viewerCommand builds the platform open command for a file
func viewerCommand(path string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
