package discovery

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/indaco/kopen/internal/logger"
	"github.com/indaco/kopen/internal/walker"
)

// DefaultTimeout bounds a search unless WithTimeout overrides it.
const DefaultTimeout = time.Second

// WalkFunc collects candidate files under root. walker.Walk is the default.
type WalkFunc func(ctx context.Context, root string, opts walker.Options) ([]string, error)

// Finder runs bounded project searches. A Finder holds no per-search state,
// so one value can serve concurrent and repeated searches.
type Finder struct {
	timeout time.Duration
	policy  ErrorPolicy
	walk    WalkFunc
}

// Option configures a Finder.
type Option func(*Finder)

// WithTimeout sets the wall-clock budget of a search. Non-positive values
// keep DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Finder) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithPolicy sets how unreadable entries are treated.
func WithPolicy(p ErrorPolicy) Option {
	return func(f *Finder) {
		f.policy = p
	}
}

// NewFinder creates a Finder with DefaultTimeout and the BestEffort policy.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		timeout: DefaultTimeout,
		policy:  BestEffort,
		walk:    walker.Walk,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindProject resolves the single project file under root using a default
// Finder.
func FindProject(ctx context.Context, root string) (string, error) {
	return NewFinder().Find(ctx, root)
}

// Find returns the one project file under root. It fails with ErrTimeout,
// a *JoinError, a *NoProjectsFoundError or a *MultipleProjectsFoundError
// (plus *AccessError in Strict mode, or ctx.Err() if the caller gives up).
func (f *Finder) Find(ctx context.Context, root string) (string, error) {
	candidates, err := f.Candidates(ctx, root)
	if err != nil {
		return "", err
	}
	return Select(candidates).Project(root)
}

// Candidates runs the bounded walk and returns every project file found,
// without applying the selection policy.
func (f *Finder) Candidates(ctx context.Context, root string) ([]string, error) {
	log := logger.Named("discovery")

	// The token lives for this call only; every exit path cancels it.
	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	skipped := &entryErrors{}
	opts := walker.Options{
		OnError: func(path string, err error) {
			log.Debug().Str("path", path).Err(err).Msg("skipping entry")
			skipped.add(err)
		},
	}

	type walkResult struct {
		paths []string
		err   error
	}
	results := make(chan walkResult, 1)

	start := time.Now()
	log.Debug().Str("root", root).Dur("timeout", f.timeout).Str("policy", f.policy.String()).Msg("search started")

	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- walkResult{err: &JoinError{Value: r}}
			}
		}()
		paths, err := f.walk(searchCtx, root, opts)
		results <- walkResult{paths: paths, err: err}
	}()

	timer := time.NewTimer(f.timeout)
	defer timer.Stop()

	var res walkResult
	select {
	case res = <-results:
		cancel()
	case <-timer.C:
		cancel()
		log.Debug().Str("root", root).Dur("elapsed", time.Since(start)).Msg("search timed out")
		return nil, ErrTimeout
	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()
	}

	if res.err != nil {
		log.Debug().Err(res.err).Msg("search crashed")
		return nil, asJoinError(res.err)
	}

	if f.policy == Strict {
		if err := skipped.join(); err != nil {
			return nil, &AccessError{Root: root, Err: err}
		}
	}

	log.Debug().
		Str("root", root).
		Int("candidates", len(res.paths)).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	return res.paths, nil
}

func asJoinError(err error) error {
	var joinErr *JoinError
	if errors.As(err, &joinErr) {
		return joinErr
	}
	var panicErr *walker.PanicError
	if errors.As(err, &panicErr) {
		return &JoinError{Value: panicErr.Value}
	}
	return &JoinError{Value: err}
}

// entryErrors collects skipped-entry errors reported by walker workers.
type entryErrors struct {
	mu   sync.Mutex
	errs []error
}

func (e *entryErrors) add(err error) {
	e.mu.Lock()
	e.errs = append(e.errs, err)
	e.mu.Unlock()
}

func (e *entryErrors) join() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return errors.Join(e.errs...)
}
