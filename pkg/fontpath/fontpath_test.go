package fontpath

import "testing"

func TestArchivePath(t *testing.T) {
	r := NewResolver("/srv/app")

	tests := []struct {
		name string
		font string
		want string
	}{
		{
			name: "noto family goes into subdirectory",
			font: "NotoSansJP-Bold",
			want: "/srv/app/fonts/NotoSansJP/NotoSansJP-Bold.TachyFont.jar",
		},
		{
			name: "noto regular weight",
			font: "NotoSansJP-Regular",
			want: "/srv/app/fonts/NotoSansJP/NotoSansJP-Regular.TachyFont.jar",
		},
		{
			name: "bare family name still matches",
			font: "NotoSansJP",
			want: "/srv/app/fonts/NotoSansJP/NotoSansJP.TachyFont.jar",
		},
		{
			name: "other fonts sit directly under fonts",
			font: "Roboto-Regular",
			want: "/srv/app/fonts/Roboto-Regular.TachyFont.jar",
		},
		{
			name: "lookalike prefix that keeps going still matches",
			font: "NotoSansJPanese",
			want: "/srv/app/fonts/NotoSansJP/NotoSansJPanese.TachyFont.jar",
		},
		{
			name: "nine character near miss does not match",
			font: "NotoSansJ",
			want: "/srv/app/fonts/NotoSansJ.TachyFont.jar",
		},
		{
			name: "case sensitive comparison",
			font: "notosansjp-Bold",
			want: "/srv/app/fonts/notosansjp-Bold.TachyFont.jar",
		},
		{
			name: "short name does not panic",
			font: "Arial",
			want: "/srv/app/fonts/Arial.TachyFont.jar",
		},
		{
			name: "empty name is accepted",
			font: "",
			want: "/srv/app/fonts/.TachyFont.jar",
		},
		{
			name: "unsafe characters pass through untouched",
			font: "../escape",
			want: "/srv/app/fonts/../escape.TachyFont.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.ArchivePath(tt.font)
			if got != tt.want {
				t.Errorf("ArchivePath(%q) = %q, want %q", tt.font, got, tt.want)
			}
		})
	}
}

func TestArchivePathIdempotent(t *testing.T) {
	r := NewResolver("/srv/app")
	first := r.ArchivePath("NotoSansJP-Thin")
	second := r.ArchivePath("NotoSansJP-Thin")
	if first != second {
		t.Errorf("repeated calls differ: %q vs %q", first, second)
	}
}

func TestArchivePathUsesInjectedBase(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"/srv/app", "/srv/app/fonts/Roboto-Regular.TachyFont.jar"},
		{"/opt/tachyfont", "/opt/tachyfont/fonts/Roboto-Regular.TachyFont.jar"},
		{".", "./fonts/Roboto-Regular.TachyFont.jar"},
		{"", "/fonts/Roboto-Regular.TachyFont.jar"},
	}

	for _, tt := range tests {
		r := NewResolver(tt.base)
		if got := r.ArchivePath("Roboto-Regular"); got != tt.want {
			t.Errorf("base %q: got %q, want %q", tt.base, got, tt.want)
		}
		if r.BaseDir() != tt.base {
			t.Errorf("BaseDir() = %q, want %q", r.BaseDir(), tt.base)
		}
	}
}

func TestFamilyDir(t *testing.T) {
	tests := []struct {
		font string
		want string
	}{
		{"NotoSansJP-Bold", "NotoSansJP/"},
		{"NotoSansJP", "NotoSansJP/"},
		{"NotoSansJPWeird", "NotoSansJP/"},
		{"NotoSans", ""},
		{"Roboto-Regular", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FamilyDir(tt.font); got != tt.want {
			t.Errorf("FamilyDir(%q) = %q, want %q", tt.font, got, tt.want)
		}
	}
}
