package config

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	base := []string{"urls.txt", "out.txt", "details", "3", "2.5", "10"}

	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr error
	}{
		{
			name: "positional only",
			args: base,
			want: Config{URLsFile: "urls.txt", OutFile: "out.txt", DetailDir: "details", RetryTimes: 3, Timeout: 2500 * time.Millisecond, MaxConcurrency: 10},
		},
		{
			name: "verbose",
			args: append(append([]string{}, base...), "-v"),
			want: Config{URLsFile: "urls.txt", OutFile: "out.txt", DetailDir: "details", RetryTimes: 3, Timeout: 2500 * time.Millisecond, MaxConcurrency: 10, Verbose: true},
		},
		{
			name: "verbose long form and report",
			args: append(append([]string{}, base...), "-report", "r.json", "-verbose"),
			want: Config{URLsFile: "urls.txt", OutFile: "out.txt", DetailDir: "details", RetryTimes: 3, Timeout: 2500 * time.Millisecond, MaxConcurrency: 10, Verbose: true, ReportFile: "r.json"},
		},
		{name: "too few", args: base[:5], wantErr: ErrUsage},
		{
			name: "unknown trailing is ignored",
			args: append(append([]string{}, base...), "x"),
			want: Config{URLsFile: "urls.txt", OutFile: "out.txt", DetailDir: "details", RetryTimes: 3, Timeout: 2500 * time.Millisecond, MaxConcurrency: 10},
		},
		{name: "report without file", args: append(append([]string{}, base...), "-report"), wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseInvalidNumbers(t *testing.T) {
	for _, args := range [][]string{
		{"u", "o", "d", "zero", "1", "1"},
		{"u", "o", "d", "0", "1", "1"},
		{"u", "o", "d", "1", "-1", "1"},
		{"u", "o", "d", "1", "abc", "1"},
		{"u", "o", "d", "1", "1", "0"},
	} {
		if _, err := Parse(args); err == nil || errors.Is(err, ErrUsage) {
			t.Errorf("Parse(%v) error = %v, want a validation error", args, err)
		}
	}
}
