package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, "<html><title>%s</title></html>", r.URL.RequestURI())
	}))
	defer server.Close()

	dir := t.TempDir()
	urlsFile := filepath.Join(dir, "urls.txt")
	outFile := filepath.Join(dir, "out.txt")
	detailDir := filepath.Join(dir, "details")
	reportFile := filepath.Join(dir, "report.csv")

	input := strings.Join([]string{
		server.URL + "/b?id=2",
		server.URL,
		server.URL + "/gone",
		"ftp://example.com",
		server.URL + "/a",
	}, "\n")
	if err := os.WriteFile(urlsFile, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	code := run([]string{"scan", urlsFile, outFile, detailDir, "2", "5", "2", "-report", reportFile}, &stdout)
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	index, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	wantIndex := fmt.Sprintf("0 %s/a\n1 %s/b?id=2\n", server.URL, server.URL)
	if string(index) != wantIndex {
		t.Errorf("index = %q, want %q", index, wantIndex)
	}

	entries, err := os.ReadDir(detailDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("detail dir has %d files, want 2", len(entries))
	}
	for name, want := range map[string]string{
		"0.html": "<html><title>/a</title></html>",
		"1.html": "<html><title>/b?id=2</title></html>",
	} {
		body, err := os.ReadFile(filepath.Join(detailDir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != want {
			t.Errorf("%s = %q, want %q", name, body, want)
		}
	}

	report, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(report)), "\n"); len(lines) != 3 {
		t.Errorf("report has %d lines, want 3", len(lines))
	}
	if !strings.Contains(stdout.String(), "Time used:") {
		t.Errorf("stdout missing elapsed time:\n%s", stdout.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout bytes.Buffer
	if code := run([]string{"scan", "only", "three", "args"}, &stdout); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "Usage: scan urls_file") {
		t.Errorf("usage = %q", stdout.String())
	}
}

func TestRunMissingURLFile(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out.txt")

	var stdout bytes.Buffer
	code := run([]string{"scan", filepath.Join(dir, "missing.txt"), outFile, filepath.Join(dir, "d"), "1", "1", "1"}, &stdout)
	if code == 0 {
		t.Error("run() = 0, want non-zero for unreadable input")
	}
	if _, err := os.Stat(outFile); !os.IsNotExist(err) {
		t.Errorf("index file written despite unreadable input: %v", err)
	}
}
