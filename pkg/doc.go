// Package pkg provides the core libraries for tachypack.
//
// # Overview
//
// Tachypack locates the packaged TachyFont archives that an incremental
// font server ships alongside its binary. The pkg directory is organized
// into four areas:
//
//  1. [fontpath] - Font name to archive path resolution (pure, no I/O)
//  2. [archive] - Read-only inspection of .TachyFont.jar files
//  3. [errors] - Structured errors with machine-readable codes
//  4. [buildinfo] - Build-time version information
//
// # Quick Start
//
// Resolve a font name and verify its archive:
//
//	import (
//	    "github.com/tachyfont/tachypack/pkg/archive"
//	    "github.com/tachyfont/tachypack/pkg/fontpath"
//	)
//
//	r := fontpath.NewResolver("/srv/app")
//	path := r.ArchivePath("NotoSansJP-Bold")
//	// "/srv/app/fonts/NotoSansJP/NotoSansJP-Bold.TachyFont.jar"
//
//	if err := archive.Stat(path); err != nil {
//	    // archive missing; resolution never checks for you
//	}
//
// Resolution is deliberately side-effect free: it performs no validation
// and no file-system access, so it is safe to call from any goroutine and
// trivial to test with injected base directories. Everything that touches
// the disk lives in [archive] or in the CLI.
package pkg
