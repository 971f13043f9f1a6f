package metrics

// Noop is a Recorder that discards all events.
// Used when no metrics backend is configured.
type Noop struct{}

// NewNoop creates a no-op Recorder.
func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) IncReviewCreated() {}
func (n *Noop) IncReportServed()  {}
func (n *Noop) IncUserSignedUp()  {}
func (n *Noop) IncLoginSuccess()  {}
func (n *Noop) IncLoginFailure()  {}
