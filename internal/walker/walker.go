package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// ProjectExt is the extension that identifies a KiCad project descriptor.
const ProjectExt = ".kicad_pro"

// readDirFn mirrors os.ReadDir for test overrides.
var readDirFn = os.ReadDir

const (
	minWorkers = 2
	maxWorkers = 16
)

// Options configures a Walk.
type Options struct {
	// Ext is the file extension to collect. Defaults to ProjectExt.
	Ext string

	// Workers overrides the worker count. <=0 uses GOMAXPROCS clamped to [2, 16].
	Workers int

	// OnError, if set, receives every entry the walk had to skip because it
	// could not be stat'ed or read. It is called from worker goroutines.
	OnError func(path string, err error)
}

// PanicError reports a worker that panicked during a walk.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return "walker: worker panicked"
}

// Walk traverses the tree rooted at root and returns every regular file whose
// extension equals opts.Ext. Symbolic links below root are never followed.
//
// Cancelling ctx stops workers from descending into new directories; visits
// already in progress still finish, so matches found right after cancellation
// may be part of the result. Unreadable entries are skipped.
//
// The returned error is non-nil only when a worker panicked.
func Walk(ctx context.Context, root string, opts Options) ([]string, error) {
	if opts.Ext == "" {
		opts.Ext = ProjectExt
	}

	info, err := os.Stat(root)
	if err != nil {
		opts.report(root, err)
		return nil, nil
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() && MatchesExt(info.Name(), opts.Ext) {
			return []string{root}, nil
		}
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &walk{
		ctx:    ctx,
		cancel: cancel,
		opts:   opts,
	}
	return w.run(root)
}

// MatchesExt reports whether name carries exactly the extension ext.
// A bare dotfile such as ".kicad_pro" has no extension.
func MatchesExt(name, ext string) bool {
	return len(name) > len(ext) && filepath.Ext(name) == ext
}

type walk struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   Options

	mu      sync.Mutex
	results []string

	panicOnce sync.Once
	panicErr  *PanicError
}

func (w *walk) run(root string) ([]string, error) {
	workerCount := w.opts.Workers
	if workerCount <= 0 {
		workerCount = clampInt(runtime.GOMAXPROCS(0), minWorkers, maxWorkers)
	}

	dirJobs := make(chan string, clampInt(workerCount*8, 32, 1024))

	var pendingDirs atomic.Int64
	pendingDirs.Store(1)
	var closeDirJobsOnce sync.Once
	closeDirJobs := func() {
		closeDirJobsOnce.Do(func() {
			close(dirJobs)
		})
	}
	// done retires n directories that will never be visited or were just visited.
	done := func(n int64) {
		if pendingDirs.Add(-n) == 0 {
			closeDirJobs()
		}
	}

	dirJobs <- root

	var workerWG sync.WaitGroup
	workerWG.Add(workerCount)
	for range workerCount {
		go func() {
			defer workerWG.Done()
			w.worker(dirJobs, &pendingDirs, done)
		}()
	}
	workerWG.Wait()

	if w.panicErr != nil {
		return nil, w.panicErr
	}
	return w.results, nil
}

// worker pops directories from its private stack first and falls back to the
// shared queue. Matches stay in a private buffer until the worker exits.
func (w *walk) worker(dirJobs chan string, pendingDirs *atomic.Int64, done func(int64)) {
	var found []string
	stack := make([]string, 0, 8)
	held := int64(0)

	defer func() {
		if r := recover(); r != nil {
			w.panicOnce.Do(func() {
				w.panicErr = &PanicError{Value: r, Stack: debug.Stack()}
			})
			w.cancel()
			// Retire the directory being visited plus everything still stacked.
			done(held + int64(len(stack)))
		}
		w.merge(found)
	}()

	for {
		var dir string
		if n := len(stack); n > 0 {
			dir = stack[n-1]
			stack = stack[:n-1]
		} else {
			next, ok := <-dirJobs
			if !ok {
				return
			}
			dir = next
		}
		held = 1

		childDirs := w.visit(dir, &found)
		pendingDirs.Add(int64(len(childDirs)))
		held = 0
		done(1)

		for _, child := range childDirs {
			select {
			case dirJobs <- child:
			default:
				stack = append(stack, child)
			}
		}
	}
}

// visit reads one directory, appends matching files to found and returns the
// subdirectories eligible for descent.
func (w *walk) visit(dir string, found *[]string) []string {
	if w.ctx.Err() != nil {
		return nil
	}

	entries, err := readDirFn(dir)
	if err != nil {
		w.opts.report(dir, err)
		return nil
	}

	var childDirs []string
	for _, entry := range entries {
		if w.ctx.Err() != nil {
			break
		}

		path := filepath.Join(dir, entry.Name())
		typ := entry.Type()
		switch {
		case typ.IsDir():
			childDirs = append(childDirs, path)
		case typ.IsRegular():
			if MatchesExt(entry.Name(), w.opts.Ext) {
				*found = append(*found, path)
			}
		case typ&fs.ModeSymlink != 0:
			// not followed
		}
	}
	return childDirs
}

func (w *walk) merge(found []string) {
	if len(found) == 0 {
		return
	}
	w.mu.Lock()
	w.results = append(w.results, found...)
	w.mu.Unlock()
}

func (o Options) report(path string, err error) {
	if o.OnError != nil {
		o.OnError(path, err)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
