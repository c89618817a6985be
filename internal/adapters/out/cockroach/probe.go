// Package cockroach implements the cluster probe adapter over the CockroachDB SQL interface.
package cockroach

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// Defaults for the probe.
const (
	DefaultConnectTimeout = 3 * time.Second
	DefaultWriteInterval  = 10 * time.Millisecond
	DefaultMaxConns       = 4
)

const (
	nodesQuery    = `SELECT count(DISTINCT node_id) FROM crdb_internal.gossip_liveness WHERE decommissioning = false`
	rangesQuery   = `SELECT count(DISTINCT range_id) FROM crdb_internal.ranges_no_leases`
	replicasQuery = `SELECT count(*) FROM crdb_internal.ranges_no_leases`
	insertQuery   = `INSERT INTO defaultdb.demo_transactions (ts, amount) VALUES (now(), $1) ON CONFLICT DO NOTHING`
	schemaQuery   = `CREATE TABLE IF NOT EXISTS defaultdb.demo_transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	ts TIMESTAMPTZ NOT NULL DEFAULT now(),
	amount INT NOT NULL
)`
)

// Ensure Probe implements out.ClusterProbe.
var _ out.ClusterProbe = (*Probe)(nil)

// Config holds the SQL connection settings.
type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int32
	ConnectTimeout time.Duration
	WriteInterval  time.Duration
}

// DSN renders the connection string for pgx.
func (c Config) DSN() string {
	timeout := c.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}

	q := url.Values{}
	q.Set("sslmode", sslMode)
	q.Set("connect_timeout", strconv.Itoa(int(timeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String()
}

// DB is the subset of *pgxpool.Pool the probe uses.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

// Probe observes the cluster and drives a small write workload.
type Probe struct {
	db            DB
	writeInterval time.Duration
	transactions  atomic.Int64
	log           *log.Logger
}

// New creates a probe backed by a lazily connecting pool. The cluster may be
// unreachable at startup; failures surface on each call.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Probe, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	if poolCfg.MaxConns <= 0 {
		poolCfg.MaxConns = DefaultMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	interval := cfg.WriteInterval
	if interval < 0 {
		interval = 0
	} else if interval == 0 {
		interval = DefaultWriteInterval
	}

	return NewWithDB(pool, interval, logger), nil
}

// NewWithDB creates a probe over an existing connection (for testing).
func NewWithDB(db DB, writeInterval time.Duration, logger *log.Logger) *Probe {
	return &Probe{
		db:            db,
		writeInterval: writeInterval,
		log:           logger.With("adapter", "cockroach"),
	}
}

// Close releases the pool.
func (p *Probe) Close() {
	p.db.Close()
}

// EnsureSchema creates the workload table when missing.
func (p *Probe) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schemaQuery); err != nil {
		return fmt.Errorf("%w: ensure schema: %v", domain.ErrUnreachableBackend, err)
	}
	return nil
}

// Health queries node, range and replica counts.
func (p *Probe) Health(ctx context.Context) (*domain.ClusterHealth, error) {
	health := &domain.ClusterHealth{}

	counts := []struct {
		name  string
		query string
		dst   *int
	}{
		{"nodes", nodesQuery, &health.Nodes},
		{"ranges", rangesQuery, &health.Ranges},
		{"replicas", replicasQuery, &health.Replicas},
	}

	for _, c := range counts {
		var n int64
		if err := p.db.QueryRow(ctx, c.query).Scan(&n); err != nil {
			p.log.Warn("cluster query failed", "query", c.name, "error", err)
			return nil, fmt.Errorf("%w: count %s: %v", domain.ErrUnreachableBackend, c.name, err)
		}
		*c.dst = int(n)
	}

	health.Timestamp = time.Now().UTC()
	return health, nil
}

// SimulateWrites inserts count rows, pacing them by the write interval.
// Individual failures are counted, not returned.
func (p *Probe) SimulateWrites(ctx context.Context, count int) (*domain.WriteReport, error) {
	report := &domain.WriteReport{}

	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			report.Failed += count - i
			break
		}

		amount := rand.IntN(1000) + 1
		if _, err := p.db.Exec(ctx, insertQuery, amount); err != nil {
			p.log.Debug("simulated write failed", "error", err)
			report.Failed++
		} else {
			report.Success++
			p.transactions.Add(1)
		}

		if p.writeInterval > 0 && i < count-1 {
			select {
			case <-ctx.Done():
			case <-time.After(p.writeInterval):
			}
		}
	}

	report.TotalCount = p.transactions.Load()
	p.log.Info("simulated writes", "success", report.Success, "failed", report.Failed, "total", report.TotalCount)
	return report, nil
}

// Transactions returns the number of successful simulated writes so far.
func (p *Probe) Transactions() int64 {
	return p.transactions.Load()
}
