package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/config"
)

const probeTimeout = 2 * time.Second

// Postgres wraps a pgx connection pool with explicit reachability state.
// The server keeps running when the database is down; every request probes
// availability through IsAvailable instead of reading ambient global state.
type Postgres struct {
	cfg    config.PostgresConfig
	logger *zap.Logger

	mu        sync.RWMutex
	pool      *pgxpool.Pool
	available bool
}

// NewPostgres builds the handle and starts connecting. A failed initial
// connection is not fatal: a background loop retries on a fixed interval
// with a bounded attempt count, after which the next request re-probes.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	p := &Postgres{cfg: cfg, logger: logger}

	if cfg.DSN == "" {
		logger.Warn("POSTGRES_DSN not provided; database operations will fail")
		return p, nil
	}

	if err := p.connect(ctx); err != nil {
		logger.Error("postgres connection failed, retrying in background", zap.Error(err))
		go p.reconnectLoop(ctx)
		return p, nil
	}

	logger.Info("connected to postgres")
	return p, nil
}

func (p *Postgres) connect(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN)
	if err != nil {
		return err
	}
	if p.cfg.MaxConns > 0 {
		poolCfg.MaxConns = p.cfg.MaxConns
	}
	if p.cfg.MinConns > 0 {
		poolCfg.MinConns = p.cfg.MinConns
	}
	if p.cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(p.cfg.ConnMaxIdleSec) * time.Second
	}
	if p.cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(p.cfg.ConnMaxLifeSec) * time.Second
	}

	p.mu.Lock()
	if p.pool == nil {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			p.mu.Unlock()
			return err
		}
		// pgxpool connects lazily, so the handle stays valid even while
		// the database is down; reachability is tracked via available.
		p.pool = pool
	}
	pool := p.pool
	p.mu.Unlock()

	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		p.mu.Lock()
		p.available = false
		p.mu.Unlock()
		return err
	}

	p.mu.Lock()
	p.available = true
	p.mu.Unlock()
	return nil
}

// reconnectLoop retries the connection on a fixed interval, giving up after
// the configured attempt budget. After that the store waits for the next
// IsAvailable call to re-probe.
func (p *Postgres) reconnectLoop(ctx context.Context) {
	interval := time.Duration(p.cfg.ReconnectIntervalSec) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	maxAttempts := p.cfg.MaxReconnectAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
		if err := p.connect(ctx); err != nil {
			p.logger.Warn("postgres reconnection attempt failed",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", maxAttempts),
				zap.Error(err))
			continue
		}
		p.logger.Info("postgres reconnected", zap.Int("attempt", attempt))
		return
	}
	p.logger.Warn("stopped automatic postgres reconnection; will re-probe on next request",
		zap.Int("max_attempts", maxAttempts))
}

// IsAvailable reports storage reachability by pinging on every call. No
// event flips the cached flag when the database dies mid-run, so trusting
// a stale "up" would leave the gate blind to outages; the ping is bounded
// by probeTimeout. A recovered database is picked up by the request that
// observes it.
func (p *Postgres) IsAvailable(ctx context.Context) bool {
	p.mu.RLock()
	pool, available := p.pool, p.available
	p.mu.RUnlock()

	if pool == nil {
		if p.cfg.DSN == "" {
			return false
		}
		return p.connect(ctx) == nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		p.mu.Lock()
		p.available = false
		p.mu.Unlock()
		if available {
			p.logger.Warn("postgres became unreachable", zap.Error(err))
		}
		return false
	}

	p.mu.Lock()
	p.available = true
	p.mu.Unlock()
	return true
}

// Probe pings the database, returning the underlying error when down.
func (p *Postgres) Probe(ctx context.Context) error {
	p.mu.RLock()
	pool := p.pool
	p.mu.RUnlock()
	if pool == nil {
		return context.DeadlineExceeded
	}
	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return pool.Ping(pingCtx)
}

// PoolHandle returns the underlying pgx pool.
func (p *Postgres) PoolHandle() *pgxpool.Pool {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pool
}

// Close releases pool resources.
func (p *Postgres) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	p.available = false
}
