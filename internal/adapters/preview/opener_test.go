package preview

import (
	"testing"
)

func TestCheckInside(t *testing.T) {
	tests := []struct {
		name       string
		catalogDir string
		imagePath  string
		wantErr    bool
	}{
		{
			name:       "image in catalog root",
			catalogDir: "/photos",
			imagePath:  "/photos/cat.png",
			wantErr:    false,
		},
		{
			name:       "image in subdirectory",
			catalogDir: "/photos",
			imagePath:  "/photos/2024/trip/cat.png",
			wantErr:    false,
		},
		{
			name:       "image outside catalog",
			catalogDir: "/photos",
			imagePath:  "/home/user/cat.png",
			wantErr:    true,
		},
		{
			name:       "sibling directory with shared prefix",
			catalogDir: "/photos",
			imagePath:  "/photos-backup/cat.png",
			wantErr:    true,
		},
		{
			name:       "catalog directory itself",
			catalogDir: "/photos",
			imagePath:  "/photos",
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := NewOpener(tt.catalogDir)
			err := opener.checkInside(tt.imagePath)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkInside(%q) error = %v, wantErr %v", tt.imagePath, err, tt.wantErr)
			}
		})
	}
}
