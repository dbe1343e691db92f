package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yingtu35/url-scanner/internal/render"
)

func main() {
	log := logrus.StandardLogger()

	if len(os.Args) != 3 && len(os.Args) != 4 {
		fmt.Printf("Usage: %s in_dir out_dir [workers]\n", os.Args[0])
		os.Exit(0)
	}
	inDir, outDir := os.Args[1], os.Args[2]

	workers := runtime.NumCPU()
	if len(os.Args) == 4 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil || n < 1 {
			log.Fatalf("workers must be a positive integer, got %q", os.Args[3])
		}
		workers = n
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("Error creating %s: %v", outDir, err)
	}
	tasks, err := render.Tasks(inDir, outDir)
	if err != nil {
		log.Fatalf("Error listing html files: %v", err)
	}

	browser, err := render.LaunchPlaywright()
	if err != nil {
		log.Fatalf("Error launching Playwright browser: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := render.NewPagePool(browser, workers)
	start := time.Now()
	n, err := render.NewRenderer(pool, workers, os.Stdout, log).Render(ctx, tasks)
	if err != nil {
		log.Errorf("Error rendering: %v", err)
	}

	if err := pool.Close(); err != nil {
		log.Errorf("Error closing pages: %v", err)
	}
	if err := browser.Close(); err != nil {
		log.Errorf("Error closing browser: %v", err)
	}

	fmt.Printf("Rendered %d of %d files.\n", n, len(tasks))
	fmt.Printf("Total time: %.3f seconds.\n", time.Since(start).Seconds())
}
