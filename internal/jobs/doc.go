// Package jobs implements background tasks that run independently of HTTP
// request handling.
//
// # Available Jobs
//
//   - TableStatsReporter: publishes per-table row counts to Prometheus
//
// Jobs own a ticker loop started with Start and stopped with Stop; RunOnce
// performs a single pass synchronously:
//
//	reporter := jobs.NewTableStatsReporter(repository.NewStatsRepository(db), time.Minute)
//	reporter.Start()
//	defer reporter.Stop()
//
// Jobs log errors but don't crash the application.
package jobs
