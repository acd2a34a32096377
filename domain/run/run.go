package run

import (
	"strconv"
	"time"

	"fluxion/domain/core"
	"fluxion/domain/device"
)

// Params identifies one survey run: which device family is enumerated and
// under which axioms.
type Params struct {
	Category     device.Category
	Ports        int
	ConserveFlux bool
}

// Fingerprint hashes the identifying fields, so two runs over the same
// universe can be recognized as such.
func (p Params) Fingerprint() core.RunFingerprint {
	return core.ComputeRunFingerprint([]string{
		p.Category.String(),
		strconv.Itoa(p.Ports),
		strconv.FormatBool(p.ConserveFlux),
	})
}

// Run carries the identity and timing of one survey pass.
type Run struct {
	ID          core.RunID
	Params      Params
	Fingerprint core.RunFingerprint
	StartedAt   core.Timestamp
	FinishedAt  core.Timestamp
}

// NewRun mints a run with a fresh ID and start timestamp
func NewRun(p Params) *Run {
	return &Run{
		ID:          core.RunID(core.NewID()),
		Params:      p,
		Fingerprint: p.Fingerprint(),
		StartedAt:   core.Now(),
	}
}

// Finish stamps the completion time
func (r *Run) Finish() {
	r.FinishedAt = core.Now()
}

// Elapsed returns the wall time between start and finish
func (r *Run) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
