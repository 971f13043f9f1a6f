// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	IncReviewCreated()
	IncReportServed()
	IncUserSignedUp()
	IncLoginSuccess()
	IncLoginFailure()
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	ReviewsCreated int64
	ReportsServed  int64
	UsersSignedUp  int64
	LoginSuccesses int64
	LoginFailures  int64
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
