package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "tag",
			value:     "white cat",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "tag",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "tag",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateRequired_ReadableFieldNames(t *testing.T) {
	err := ValidateRequired("findText", "")
	if err == nil {
		t.Fatal("expected error for empty value")
	}
	if got := err.Error(); got != "findText: find text is required" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		name     string
		position int
		count    int
		wantErr  bool
	}{
		{
			name:     "first record",
			position: 0,
			count:    3,
			wantErr:  false,
		},
		{
			name:     "last record",
			position: 2,
			count:    3,
			wantErr:  false,
		},
		{
			name:     "negative",
			position: -1,
			count:    3,
			wantErr:  true,
		},
		{
			name:     "past the end",
			position: 3,
			count:    3,
			wantErr:  true,
		},
		{
			name:     "empty catalog",
			position: 0,
			count:    0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePosition("position", tt.position, tt.count)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePosition() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
