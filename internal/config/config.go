package config

import "os"

const (
	// DefaultSeparator joins and splits caption tags.
	DefaultSeparator = ", "

	// DefaultCaptionExt is the sidecar file extension.
	DefaultCaptionExt = ".txt"
)

// CatalogDir returns the image directory from TAGVAULT_DIR env var,
// falling back to the current directory.
func CatalogDir() string {
	if env := os.Getenv("TAGVAULT_DIR"); env != "" {
		return env
	}
	return "."
}

// Separator returns the tag separator from TAGVAULT_SEPARATOR env var,
// falling back to DefaultSeparator.
func Separator() string {
	if env := os.Getenv("TAGVAULT_SEPARATOR"); env != "" {
		return env
	}
	return DefaultSeparator
}

// CaptionExt returns the sidecar extension from TAGVAULT_CAPTION_EXT
// env var, falling back to DefaultCaptionExt.
func CaptionExt() string {
	if env := os.Getenv("TAGVAULT_CAPTION_EXT"); env != "" {
		return env
	}
	return DefaultCaptionExt
}
