// Package dbtest builds gorm handles that render SQL without a server.
package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Recorder keeps every statement gorm builds, vars inlined by the dialect.
type Recorder struct {
	mu    sync.Mutex
	stmts []string
}

func (r *Recorder) LogMode(gormLogger.LogLevel) gormLogger.Interface {
	return r
}

func (r *Recorder) Info(context.Context, string, ...interface{}) {}

func (r *Recorder) Warn(context.Context, string, ...interface{}) {}

func (r *Recorder) Error(context.Context, string, ...interface{}) {}

func (r *Recorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.stmts = append(r.stmts, sql)
	r.mu.Unlock()
}

func (r *Recorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stmts...)
}

// WithPrefix returns the recorded statements starting with prefix.
func (r *Recorder) WithPrefix(prefix string) []string {
	var out []string
	for _, s := range r.Statements() {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.stmts = nil
	r.mu.Unlock()
}

// DryRun opens a Postgres-dialect gorm handle in DryRun mode. Nothing is
// sent to a database; queries return no rows.
func DryRun(t testing.TB) (*gorm.DB, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}
