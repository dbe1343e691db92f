package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yingtu35/url-scanner/internal/scanner"
)

// WriteIndex writes one "{index} {url}" line per result to indexFile and the
// raw body of result i to detailDir/{i}.html. Results are written in the
// order given. detailDir is created if absent.
func WriteIndex(results []scanner.Result, indexFile, detailDir string) error {
	if err := os.MkdirAll(detailDir, 0o755); err != nil {
		return fmt.Errorf("creating detail dir: %w", err)
	}

	file, err := os.Create(indexFile)
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i, r := range results {
		if _, err := fmt.Fprintf(w, "%d %s\n", i, r.URL); err != nil {
			return fmt.Errorf("writing index file: %w", err)
		}
		detail := filepath.Join(detailDir, strconv.Itoa(i)+".html")
		if err := os.WriteFile(detail, r.Body, 0o644); err != nil {
			return fmt.Errorf("writing detail file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}
	return file.Close()
}
