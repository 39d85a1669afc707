package errors

import (
	"strings"
	"testing"
)

func TestValidateFontName(t *testing.T) {
	tests := []struct {
		name    string
		font    string
		wantErr bool
	}{
		{"valid name", "NotoSansJP-Bold", false},
		{"valid with digits", "Roboto2-Regular", false},
		{"short name", "Go", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"parent traversal", "../etc/passwd", true},
		{"forward slash", "family/font", true},
		{"backslash", "family\\font", true},
		{"null byte", "font\x00name", true},
		{"control character", "font\nname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFontName(tt.font)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFontName(%q) error = %v, wantErr %v", tt.font, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFont) {
				t.Errorf("ValidateFontName(%q) code = %v, want %v", tt.font, GetCode(err), ErrCodeInvalidFont)
			}
		})
	}
}

func TestValidateBaseDir(t *testing.T) {
	if err := ValidateBaseDir("/srv/app"); err != nil {
		t.Errorf("ValidateBaseDir(/srv/app) = %v, want nil", err)
	}

	if err := ValidateBaseDir(""); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateBaseDir(empty) code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}

	if err := ValidateBaseDir("/srv\x00/app"); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateBaseDir(null byte) code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}
}
