package progress

// Reporter receives best-effort progress updates from long-running
// operations at defined checkpoints. Updates are cosmetic: a reporter
// must never influence the outcome of the operation it observes.
type Reporter interface {
	// Begin announces a new stage
	Begin(stage string)
	// Update reports completion of the current stage as a fraction,
	// already clamped to [0, 1] by the caller
	Update(fraction float64)
	// Done marks the current stage finished
	Done()
}

// Nop is the default Reporter; it discards all updates
type Nop struct{}

func (Nop) Begin(string)   {}
func (Nop) Update(float64) {}
func (Nop) Done()          {}

// Ensure Nop implements Reporter
var _ Reporter = Nop{}
