package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yingtu35/url-scanner/pkg/domain"
)

// LoadURLs reads the URL file at path and returns its candidate URLs in file order.
func LoadURLs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening url file: %w", err)
	}
	defer file.Close()

	urls, err := ReadURLs(file)
	if err != nil {
		return nil, fmt.Errorf("reading url file %s: %w", path, err)
	}
	return urls, nil
}

// ReadURLs reads one URL per line from r, percent-decodes it and keeps only
// candidate URLs. Duplicates are kept.
func ReadURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := Unquote(strings.TrimSpace(scanner.Text()))
		if domain.IsCandidateURL(line) {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// Unquote percent-decodes every valid %XX escape in s and leaves malformed
// ones untouched. Invalid UTF-8 in the result is replaced with U+FFFD.
func Unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			if b, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				sb.WriteByte(byte(b))
				i += 2
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return strings.ToValidUTF8(sb.String(), "\uFFFD")
}
