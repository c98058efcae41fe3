package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	"github.com/evan-idocoding/dynconf/store"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = time.Minute

type pollerConfig struct {
	interval time.Duration
	log      *slog.Logger
}

// PollerOption configures a Poller at construction time.
type PollerOption func(*pollerConfig)

// WithInterval sets the poll interval. Non-positive values fall back to
// DefaultInterval.
func WithInterval(d time.Duration) PollerOption {
	return func(c *pollerConfig) { c.interval = d }
}

// WithLogger sets the logger used for poll failures. Default is
// slog.Default().
func WithLogger(l *slog.Logger) PollerOption {
	return func(c *pollerConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Poller periodically loads a Source and applies each snapshot to a
// store. After a failed load it retries with exponential backoff instead
// of waiting a full interval; a successful load resets the backoff.
type Poller struct {
	src      Source
	st       *store.Store
	interval time.Duration
	log      *slog.Logger

	// kick coalesces watch-triggered reload requests.
	kick chan struct{}
}

// NewPoller creates a Poller feeding st from src. A nil st means
// store.Default().
func NewPoller(src Source, st *store.Store, opts ...PollerOption) *Poller {
	if src == nil {
		panic("source: nil Source")
	}
	if st == nil {
		st = store.Default()
	}
	cfg := pollerConfig{interval: DefaultInterval, log: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.interval <= 0 {
		cfg.interval = DefaultInterval
	}
	return &Poller{
		src:      src,
		st:       st,
		interval: cfg.interval,
		log:      cfg.log,
		kick:     make(chan struct{}, 1),
	}
}

// Kick requests an immediate reload. It never blocks; pending requests
// coalesce into one.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Run loads the source once immediately, then polls until ctx is done.
// It returns ctx.Err() on cancellation; load failures are logged and
// retried, never returned.
//
// If the source implements Watcher, Run also subscribes to its change
// notifications for immediate reloads.
func (p *Poller) Run(ctx context.Context) error {
	if w, ok := p.src.(Watcher); ok {
		if err := w.Watch(p.Kick); err != nil {
			p.log.Warn("dynconf: source watch unavailable, relying on polling", "error", err)
		} else {
			defer func() { _ = w.Unwatch() }()
		}
	}

	bo := backoff.NewExponentialBackOff()
	// Retry sooner than a full interval, but back off up to it.
	bo.InitialInterval = p.interval / 10
	if bo.InitialInterval <= 0 {
		bo.InitialInterval = time.Millisecond
	}
	bo.MaxInterval = p.interval
	bo.MaxElapsedTime = 0 // retry forever

	timer := time.NewTimer(0) // first load is immediate
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.kick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}

		next := p.interval
		if err := p.loadOnce(ctx); err != nil {
			next = bo.NextBackOff()
			p.log.Warn("dynconf: poll failed", "error", err, "retry_in", next)
		} else {
			bo.Reset()
		}
		timer.Reset(next)
	}
}

func (p *Poller) loadOnce(ctx context.Context) error {
	snap, err := p.src.Load(ctx)
	if err != nil {
		return err
	}
	p.st.Apply(snap)
	return nil
}

// RunAll runs several pollers until ctx is done or one of them stops,
// whichever comes first.
func RunAll(ctx context.Context, pollers ...*Poller) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range pollers {
		p := p
		g.Go(func() error { return p.Run(ctx) })
	}
	return g.Wait()
}
