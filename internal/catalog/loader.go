package catalog

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
)

// uploadPattern matches every file at any depth below a category directory.
const uploadPattern = "**/*"

// uploadExts are the accepted image extensions, compared in lower case.
var uploadExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

func isUploadName(name string) bool {
	return uploadExts[strings.ToLower(path.Ext(name))]
}

// LoadUploads reads user layers laid out as <dir>/<category>/**/<file>.
// Files are ordered by path, which fixes their position and so their tier.
// Unknown category directories and non-image files are skipped with a warning.
func LoadUploads(dir string) (map[Category][]Asset, error) {
	return LoadUploadsFS(os.DirFS(dir))
}

// LoadUploadsFS is LoadUploads over an arbitrary filesystem.
func LoadUploadsFS(fsys fs.FS) (map[Category][]Asset, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read layers dir: %w", err)
	}

	out := make(map[Category][]Asset)
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		cat, err := ParseCategory(entry.Name())
		if err != nil {
			log.Printf("Warning: skipping layers dir %s: %v", entry.Name(), err)
			continue
		}

		assets, err := loadCategory(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("load %s layers: %w", cat, err)
		}
		if len(assets) > 0 {
			out[cat] = assets
		}
	}
	return out, nil
}

func loadCategory(fsys fs.FS, dir string) ([]Asset, error) {
	matches, err := doublestar.Glob(fsys, path.Join(dir, uploadPattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", dir, err)
	}
	sort.Strings(matches)

	var assets []Asset
	for _, name := range matches {
		if !isUploadName(name) {
			continue
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", name, err)
			continue
		}
		if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "image/") {
			log.Printf("Warning: skipping %s: content type %s is not an image", name, ct)
			continue
		}
		u := NewUpload(path.Base(name), data)
		log.Printf("Loaded layer %s (%s)", name, humanize.Bytes(uint64(u.Size())))
		assets = append(assets, u)
	}
	return assets, nil
}
