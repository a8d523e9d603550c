package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/repository"
	"github.com/forgo/holocron/api/internal/testing/fixtures"
	"github.com/forgo/holocron/api/internal/testing/testdb"
)

type stubCounter struct {
	mu     sync.Mutex
	counts []repository.TableCount
	err    error
}

func (s *stubCounter) Counts(ctx context.Context) ([]repository.TableCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts, s.err
}

func TestTableStatsReporter_RunOnce(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.DB)
	f.CreatePlanet(t, "Dantooine")
	f.CreatePlanet(t, "Geonosis")
	f.CreatePlanet(t, "Felucia")

	reporter := NewTableStatsReporter(repository.NewStatsRepository(tdb.DB), time.Hour)
	require.NoError(t, reporter.RunOnce(tdb.Ctx()))

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.TableRows("planets")))
}

func TestTableStatsReporter_RunOnce_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("store down")
	reporter := NewTableStatsReporter(&stubCounter{err: boom}, time.Hour)

	assert.ErrorIs(t, reporter.RunOnce(context.Background()), boom)
}

func TestTableStatsReporter_StartStop(t *testing.T) {
	t.Parallel()

	reporter := NewTableStatsReporter(&stubCounter{
		counts: []repository.TableCount{{Table: "favorite_characters", Rows: 4}},
	}, 10*time.Millisecond)

	reporter.Start()
	reporter.Start()
	assert.True(t, reporter.IsRunning())

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.TableRows("favorite_characters")) == 4
	}, time.Second, 5*time.Millisecond)

	reporter.Stop()
	reporter.Stop()
	assert.False(t, reporter.IsRunning())
}

func TestTableStatsReporter_Restart(t *testing.T) {
	t.Parallel()

	counter := &stubCounter{
		counts: []repository.TableCount{{Table: "users", Rows: 1}},
	}
	reporter := NewTableStatsReporter(counter, 10*time.Millisecond)

	reporter.Start()
	reporter.Stop()
	assert.False(t, reporter.IsRunning())

	counter.mu.Lock()
	counter.counts = []repository.TableCount{{Table: "users", Rows: 9}}
	counter.mu.Unlock()

	reporter.Start()
	assert.True(t, reporter.IsRunning())
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.TableRows("users")) == 9
	}, time.Second, 5*time.Millisecond)

	assert.NotPanics(t, func() {
		reporter.Stop()
		reporter.Stop()
	})
	assert.False(t, reporter.IsRunning())
}

func TestNewTableStatsReporter_DefaultInterval(t *testing.T) {
	t.Parallel()

	reporter := NewTableStatsReporter(&stubCounter{}, 0)
	assert.Equal(t, time.Minute, reporter.interval)
}
