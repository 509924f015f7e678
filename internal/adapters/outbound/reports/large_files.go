package reports

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openkraft/reportkraft/internal/domain"
)

// largeFileLine matches "<count><whitespace><path>" as printed by wc -l.
var largeFileLine = regexp.MustCompile(`^(\d+)\s+(.+)$`)

// ReadLargeFileList parses a newline-delimited "<count> <path>" list.
// Lines that do not match are skipped silently.
func (r *FileReader) ReadLargeFileList(path string) ([]domain.FileLineCount, error) {
	data, err := readReport(domain.ReportLargeFiles, path)
	if err != nil {
		return nil, err
	}
	return ParseLargeFileList(string(data)), nil
}

// ParseLargeFileList parses the text of a large-file list.
func ParseLargeFileList(text string) []domain.FileLineCount {
	var counts []domain.FileLineCount
	for _, line := range strings.Split(text, "\n") {
		m := largeFileLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue // out of int range
		}
		counts = append(counts, domain.FileLineCount{Path: m[2], Lines: n})
	}
	return counts
}

// FormatLargeFileList renders counts in the "<count> <path>" form that
// ReadLargeFileList parses.
func FormatLargeFileList(counts []domain.FileLineCount) string {
	var b strings.Builder
	for _, c := range counts {
		b.WriteString(strconv.Itoa(c.Lines))
		b.WriteByte(' ')
		b.WriteString(c.Path)
		b.WriteByte('\n')
	}
	return b.String()
}
