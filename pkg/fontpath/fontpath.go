// Package fontpath maps font names to the paths of their bundled
// TachyFont archives.
//
// Fonts ship as TachyFont archives (one ".TachyFont.jar" file per font)
// under a fonts/ directory inside a base directory chosen at startup. The
// NotoSansJP family is large enough that its archives live in their own
// subdirectory; every other font sits directly in fonts/.
//
// Resolution is pure string construction: no file-system access, no
// existence check, no caching. Callers that open or serve the archive are
// responsible for verifying the path exists.
//
// # Usage
//
//	r := fontpath.NewResolver("/srv/app")
//	p := r.ArchivePath("NotoSansJP-Bold")
//	// p == "/srv/app/fonts/NotoSansJP/NotoSansJP-Bold.TachyFont.jar"
package fontpath

// Protocol version of the TachyFont bundle format the archives follow.
const (
	MajorVersion = 1
	MinorVersion = 0
)

// ArchiveSuffix is the file extension of a packaged TachyFont archive.
const ArchiveSuffix = ".TachyFont.jar"

// FontsSegment is the directory under the base directory holding all
// font archives.
const FontsSegment = "fonts"

const (
	// notoSansJPFamily is the literal compared against the first ten
	// characters of a font name.
	notoSansJPFamily = "NotoSansJP"

	// notoSansJPDir is the family subdirectory segment, including the
	// trailing separator, inserted for NotoSansJP fonts.
	notoSansJPDir = "NotoSansJP/"
)

// Resolver computes archive paths rooted at a fixed base directory.
//
// The base directory is set once at construction and never mutated, so a
// single Resolver is safe for concurrent use.
type Resolver struct {
	baseDir string
}

// NewResolver returns a Resolver rooted at baseDir. The base directory is
// taken as-is; it is typically the installation directory of the running
// binary or a configured override.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{baseDir: baseDir}
}

// BaseDir returns the base directory the resolver was constructed with.
func (r *Resolver) BaseDir() string {
	return r.baseDir
}

// ArchivePath returns the path of the TachyFont archive for font.
//
// The result is base + "/fonts/" + family + font + ".TachyFont.jar",
// where family is "NotoSansJP/" when the first ten characters of font
// exactly equal "NotoSansJP" and empty otherwise. The comparison is
// substring equality against the ten-character literal, not a general
// prefix match; names shorter than ten characters simply never match.
//
// The font name is used verbatim: no validation, no sanitization, no
// path cleaning. Paths always use forward slashes regardless of OS.
// The function is total over all inputs, including the empty string.
func (r *Resolver) ArchivePath(font string) string {
	return r.baseDir + "/" + FontsSegment + "/" + FamilyDir(font) + font + ArchiveSuffix
}

// FamilyDir returns the family subdirectory segment for font, either
// "NotoSansJP/" or "". The trailing separator is included so the segment
// can be concatenated directly into a path.
func FamilyDir(font string) string {
	if len(font) >= len(notoSansJPFamily) && font[:len(notoSansJPFamily)] == notoSansJPFamily {
		return notoSansJPDir
	}
	return ""
}
