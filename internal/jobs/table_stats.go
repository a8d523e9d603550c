package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/repository"
)

// TableCounter reports row counts per table
type TableCounter interface {
	Counts(ctx context.Context) ([]repository.TableCount, error)
}

// TableStatsReporter periodically publishes per-table row counts as
// Prometheus gauges.
type TableStatsReporter struct {
	counter  TableCounter
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewTableStatsReporter creates a new table stats reporter job
func NewTableStatsReporter(counter TableCounter, interval time.Duration) *TableStatsReporter {
	if interval <= 0 {
		interval = 1 * time.Minute
	}
	return &TableStatsReporter{
		counter:  counter,
		interval: interval,
	}
}

// Start begins the reporter job. Calling Start while running is a no-op; a
// stopped reporter can be started again.
func (p *TableStatsReporter) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.stopCh = make(chan struct{})
	stop := p.stopCh
	p.wg.Add(1)
	p.mu.Unlock()

	go p.run(stop)
	slog.Info("table stats reporter started", slog.Duration("interval", p.interval))
}

// Stop gracefully stops the reporter job
func (p *TableStatsReporter) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
	slog.Info("table stats reporter stopped")
}

// run is the main loop; it exits when stop is closed
func (p *TableStatsReporter) run(stop <-chan struct{}) {
	defer p.wg.Done()

	p.report()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.report()
		case <-stop:
			return
		}
	}
}

func (p *TableStatsReporter) report() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.RunOnce(ctx); err != nil {
		slog.Warn("table stats report failed", slog.String("error", err.Error()))
	}
}

// RunOnce publishes the counts once (for testing or manual trigger)
func (p *TableStatsReporter) RunOnce(ctx context.Context) error {
	counts, err := p.counter.Counts(ctx)
	if err != nil {
		return err
	}
	for _, c := range counts {
		metrics.SetTableRows(c.Table, c.Rows)
	}
	return nil
}

// IsRunning returns whether the reporter is running
func (p *TableStatsReporter) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
