package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/config"
	"github.com/yingtu35/url-scanner/internal/export"
	"github.com/yingtu35/url-scanner/internal/scanner"
	"github.com/yingtu35/url-scanner/internal/source"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Parse(args[1:])
	if errors.Is(err, config.ErrUsage) {
		fmt.Fprintf(stdout, config.Usage, args[0])
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	log := setupLogger(cfg.Verbose)

	if err := os.MkdirAll(cfg.DetailDir, 0o755); err != nil {
		log.Errorf("Error creating detail dir %s: %v", cfg.DetailDir, err)
		return 1
	}

	urls, err := source.LoadURLs(cfg.URLsFile)
	if err != nil {
		log.Errorf("Error loading urls: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := scanner.NewScanner(scanner.Options{
		MaxTries:    cfg.RetryTimes,
		Timeout:     cfg.Timeout,
		Concurrency: cfg.MaxConcurrency,
		Log:         log,
	})
	report, err := s.Run(ctx, urls)
	if err != nil {
		// the run was cut short, keep whatever was collected
		log.Errorf("Error scanning urls: %v", err)
	}

	if err := export.WriteIndex(report.Results, cfg.OutFile, cfg.DetailDir); err != nil {
		log.Errorf("Error writing results: %v", err)
		return 1
	}
	if cfg.ReportFile != "" {
		if err := export.NewExporter(cfg.ReportFile).Export(report.Results, cfg.ReportFile); err != nil {
			log.Errorf("Error writing report %s: %v", cfg.ReportFile, err)
			return 1
		}
	}

	export.PrintSummary(stdout, report)
	return 0
}

func setupLogger(verbose bool) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "Mon, 02 Jan 2006 15:04:05",
	})
	log.SetLevel(logrus.ErrorLevel)
	log.SetReportCaller(false)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		log.SetReportCaller(true)
	}
	return log
}
