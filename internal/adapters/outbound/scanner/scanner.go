package scanner

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openkraft/reportkraft/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".reportkraft": true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan counts newline characters in every matching file under root, the way
// wc -l does. Results are ordered by line count descending, then by path.
func (s *FileScanner) Scan(root string, opts domain.ScanOptions) ([]domain.FileLineCount, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(opts.ExcludePaths))
	for _, p := range opts.ExcludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = domain.DefaultSourceExtensions
	}
	wantExt := make(map[string]bool, len(exts))
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		wantExt[strings.ToLower(e)] = true
	}

	var counts []domain.FileLineCount
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absRoot, path)

		if d.IsDir() {
			if path != absRoot && (skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !wantExt[strings.ToLower(filepath.Ext(d.Name()))] || extraSkip[relPath] {
			return nil
		}

		n, err := countLines(path)
		if err != nil {
			return err
		}
		counts = append(counts, domain.FileLineCount{Path: filepath.ToSlash(relPath), Lines: n})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Lines != counts[j].Lines {
			return counts[i].Lines > counts[j].Lines
		}
		return counts[i].Path < counts[j].Path
	})

	return counts, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	buf := make([]byte, 32*1024)
	n := 0
	for {
		c, err := r.Read(buf)
		n += bytes.Count(buf[:c], []byte{'\n'})
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
