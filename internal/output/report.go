package output

import (
	"path/filepath"
	"strings"

	"github.com/rpgo/fedcalc/internal/domain"
)

// GenerateReport writes set in the named format. "all" writes the verbose
// console report and the detailed CSV next to each other; out is then used
// as a base name. It returns the files written.
func GenerateReport(set *domain.ReportSet, format, out string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var written []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			path := ""
			if out != "" {
				path = strings.TrimSuffix(out, filepath.Ext(out)) + "." + Extension(f.Name())
			}
			name, err := WriteFormatted(f, set, path)
			if err != nil {
				return written, err
			}
			written = append(written, name)
		}
		return written, nil
	}

	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, set, out)
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

