package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tachyfont/tachypack/pkg/fontpath"
)

// listCommand creates the list command, which walks the fonts/ tree under
// the base directory and prints the archives found, grouped by family
// subdirectory.
func (c *CLI) listCommand() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List TachyFont archives under the base directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd, family)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list archives in this family subdirectory")

	return cmd
}

// archiveEntry is one archive found during the walk.
type archiveEntry struct {
	font   string // font name (archive basename without suffix)
	family string // family subdirectory relative to fonts/, "" for the root
}

func (c *CLI) runList(cmd *cobra.Command, family string) error {
	logger := loggerFromContext(cmd.Context())

	dir, err := c.baseDir()
	if err != nil {
		return err
	}
	fontsDir := filepath.Join(dir, fontpath.FontsSegment)
	logger.Debugf("Walking %s", fontsDir)

	if _, err := os.Stat(fontsDir); os.IsNotExist(err) {
		printInfo("No fonts directory at %s", fontsDir)
		return nil
	}

	prog := newProgress(logger)
	entries, err := collectArchives(fontsDir)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Found %d archives", len(entries)))

	printArchives(entries, family)
	return nil
}

// collectArchives walks root for archive files and returns them sorted by
// family, then font name. Unreadable subtrees are skipped, not fatal.
func collectArchives(root string) ([]archiveEntry, error) {
	var entries []archiveEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries, continue walking
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), fontpath.ArchiveSuffix) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		fam := filepath.Dir(rel)
		if fam == "." {
			fam = ""
		}
		entries = append(entries, archiveEntry{
			font:   strings.TrimSuffix(d.Name(), fontpath.ArchiveSuffix),
			family: filepath.ToSlash(fam),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].family != entries[b].family {
			return entries[a].family < entries[b].family
		}
		return entries[a].font < entries[b].font
	})
	return entries, nil
}

// printArchives renders entries grouped by family. An empty familyFilter
// prints everything.
func printArchives(entries []archiveEntry, familyFilter string) {
	shown := 0
	lastFamily := "\x00" // Sentinel that never equals a real family

	for _, e := range entries {
		if familyFilter != "" && e.family != familyFilter {
			continue
		}
		if e.family != lastFamily {
			if e.family == "" {
				fmt.Println(styleFamily.Render(fontpath.FontsSegment + "/"))
			} else {
				fmt.Println(styleFamily.Render(fontpath.FontsSegment + "/" + e.family + "/"))
			}
			lastFamily = e.family
		}
		printDetail(e.font)
		shown++
	}

	if shown == 0 {
		if familyFilter != "" {
			printInfo("No archives for family %q", familyFilter)
		} else {
			printInfo("No archives found")
		}
	}
}
