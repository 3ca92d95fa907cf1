// Package app coordinates a fuzzdex engine with a line-based dataset
// file for the CLI. The engine itself is single-threaded; App supplies
// the one exclusive lock that makes reload-on-change safe alongside
// interactive queries.
package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dmelton/fuzzdex"
	"github.com/dmelton/fuzzdex/internal/ports"
)

// App owns one engine built from one dataset file.
type App struct {
	Path string
	Opts ports.SearchOptions

	mu      sync.Mutex
	engine  *fuzzdex.Engine[string]
	watcher ports.Watcher
}

// New loads the dataset at path into a fresh engine.
func New(path string, opts ports.SearchOptions) (*App, error) {
	a := &App{Path: path, Opts: opts}
	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload rebuilds the engine from the dataset file. Each non-empty line
// is one entry: "id<TAB>label" associates label with id (repeated ids
// accumulate aliases); a line without a tab uses its line number as the
// identifier. Lines starting with '#' are skipped.
func (a *App) Reload() error {
	f, err := os.Open(a.Path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	engine, err := fuzzdex.NewWithOptions[string](a.Opts)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if id, label, ok := strings.Cut(line, "\t"); ok {
			engine.Insert(strings.TrimSpace(id), strings.TrimSpace(label))
		} else {
			engine.Insert(fmt.Sprintf("%d", lineNo), line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	a.mu.Lock()
	a.engine = engine
	a.mu.Unlock()
	return nil
}

// Search runs a query under the app lock.
func (a *App) Search(query string, limit int) []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.SearchN(query, limit)
}

// Len reports the number of indexed identifiers.
func (a *App) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Len()
}

// WatchWith starts watching the dataset with w, rebuilding on change.
// onReload (optional) is called after each successful rebuild.
func (a *App) WatchWith(w ports.Watcher, onReload func()) error {
	a.watcher = w
	return w.Watch(a.Path, func() {
		if err := a.Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "reload: %v\n", err)
			return
		}
		if onReload != nil {
			onReload()
		}
	})
}

// Close stops the watcher if one is active.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Stop()
	}
	return nil
}
