package ports

// PreviewOpener defines the interface for opening an image in the
// operating system's default viewer
type PreviewOpener interface {
	// OpenFile opens the specified image file in the system viewer.
	// The path should be absolute.
	OpenFile(path string) error
}
