// Package render takes screenshots of local HTML files with a pool of
// browser pages, one per worker.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Task struct {
	Index int    // 1-based position in the task list
	URL   string // file:// URL of the page
	Out   string // path of the screenshot
}

// Tasks lists the files of inDir, in name order, as tasks writing
// outDir/<name>.png.
func Tasks(inDir, outDir string) ([]Task, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", inDir, err)
	}
	absDir, err := filepath.Abs(inDir)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		tasks = append(tasks, Task{
			Index: len(tasks) + 1,
			URL:   "file://" + filepath.ToSlash(filepath.Join(absDir, name)),
			Out:   filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+".png"),
		})
	}
	return tasks, nil
}

type Renderer struct {
	pool    *PagePool // Pages owned by the workers
	workers int
	out     io.Writer // Progress lines go here
	log     *logrus.Logger

	outMu sync.Mutex
}

func NewRenderer(pool *PagePool, workers int, out io.Writer, log *logrus.Logger) *Renderer {
	return &Renderer{pool: pool, workers: workers, out: out, log: log}
}

// Render screenshots every task once. There is no retry: a failing task
// costs the worker its page, which is reopened for the next task. It
// returns the number of screenshots taken.
func (r *Renderer) Render(ctx context.Context, tasks []Task) (int, error) {
	taskCh := make(chan Task)
	var rendered atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < r.workers; i++ {
		g.Go(func() error {
			for task := range taskCh {
				if err := r.render(i, task); err != nil {
					r.log.WithField("worker", i).Errorf("Error rendering %s: %v", task.URL, err)
					if err := r.pool.Discard(i); err != nil {
						r.log.Warnf("Error closing page of worker %d: %v", i, err)
					}
					continue
				}
				rendered.Add(1)
				r.progress(i, task.Index)
			}
			return nil
		})
	}

	err := g.Wait()
	return int(rendered.Load()), err
}

func (r *Renderer) render(worker int, task Task) error {
	page, err := r.pool.Get(worker)
	if err != nil {
		return err
	}
	if err := page.Goto(task.URL); err != nil {
		return err
	}
	return page.Screenshot(task.Out)
}

func (r *Renderer) progress(worker, index int) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprintf(r.out, "worker-%d processed %d\n", worker, index)
}
