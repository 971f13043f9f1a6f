package metrics

import "sync/atomic"

// InMemory is a Recorder backed by atomic counters.
// Cheap enough to run in production; snapshots feed logs or debug endpoints.
type InMemory struct {
	reviewsCreated atomic.Int64
	reportsServed  atomic.Int64
	usersSignedUp  atomic.Int64
	loginSuccesses atomic.Int64
	loginFailures  atomic.Int64
}

// NewInMemory creates an in-memory Recorder.
func NewInMemory() *InMemory {
	return &InMemory{}
}

func (m *InMemory) IncReviewCreated() { m.reviewsCreated.Add(1) }
func (m *InMemory) IncReportServed()  { m.reportsServed.Add(1) }
func (m *InMemory) IncUserSignedUp()  { m.usersSignedUp.Add(1) }
func (m *InMemory) IncLoginSuccess()  { m.loginSuccesses.Add(1) }
func (m *InMemory) IncLoginFailure()  { m.loginFailures.Add(1) }

// Snapshot returns the current counter values.
func (m *InMemory) Snapshot() Snapshot {
	return Snapshot{
		ReviewsCreated: m.reviewsCreated.Load(),
		ReportsServed:  m.reportsServed.Load(),
		UsersSignedUp:  m.usersSignedUp.Load(),
		LoginSuccesses: m.loginSuccesses.Load(),
		LoginFailures:  m.loginFailures.Load(),
	}
}
