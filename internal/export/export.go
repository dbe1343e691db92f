package export

import (
	"path/filepath"
	"strings"

	"github.com/yingtu35/url-scanner/internal/scanner"
)

type Exporter interface {
	// Export writes a report of the results to the specified file
	Export(results []scanner.Result, filename string) error
}

// NewExporter picks an exporter from the file extension, CSV unless it is ".json".
func NewExporter(filename string) Exporter {
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return NewJsonExporter()
	}
	return NewCSVExporter()
}
