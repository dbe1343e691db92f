package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrUsage means the arguments do not match the command line surface.
var ErrUsage = errors.New("usage")

const Usage = "Usage: %s urls_file out_file detail_dir retry_times time_out(float) max_tasks [-(v)erbose] [-report file]\n"

type Config struct {
	URLsFile       string        // file with one URL per line
	OutFile        string        // index file, one "{index} {url}" line per result
	DetailDir      string        // directory receiving {index}.html bodies
	RetryTimes     int           // attempts per URL
	Timeout        time.Duration // per-attempt network timeout
	MaxConcurrency int           // number of workers
	Verbose        bool
	ReportFile     string // optional CSV or JSON report, "" to skip
}

// Parse reads the positional arguments, program name excluded.
func Parse(args []string) (Config, error) {
	if len(args) < 6 {
		return Config{}, ErrUsage
	}

	var cfg Config
	cfg.URLsFile, cfg.OutFile, cfg.DetailDir = args[0], args[1], args[2]

	retry, err := strconv.Atoi(args[3])
	if err != nil || retry < 1 {
		return Config{}, fmt.Errorf("retry_times must be a positive integer, got %q", args[3])
	}
	cfg.RetryTimes = retry

	seconds, err := strconv.ParseFloat(args[4], 64)
	if err != nil || seconds <= 0 {
		return Config{}, fmt.Errorf("time_out must be a positive number of seconds, got %q", args[4])
	}
	cfg.Timeout = time.Duration(seconds * float64(time.Second))

	concurrency, err := strconv.Atoi(args[5])
	if err != nil || concurrency < 1 {
		return Config{}, fmt.Errorf("max_tasks must be a positive integer, got %q", args[5])
	}
	cfg.MaxConcurrency = concurrency

	rest := args[6:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "-v", "-verbose":
			cfg.Verbose = true
		case "-report":
			if i+1 >= len(rest) {
				return Config{}, ErrUsage
			}
			i++
			cfg.ReportFile = rest[i]
		default:
			// anything else leaves the run non-verbose
		}
	}
	return cfg, nil
}
