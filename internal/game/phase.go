package game

// Phase is one step of the per-frame state machine. A frame always walks
// every phase in order; no phase is skipped. The two rendering phases have
// no data dependency on each other, but both must complete before
// Compositing because the compositor samples both eye targets. The shared
// depth buffer additionally requires them to never overlap.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUpdating
	PhaseRenderingLeft
	PhaseRenderingRight
	PhaseCompositing
	PhasePresenting
)

// Next returns the phase that follows p; Presenting wraps back to Idle.
func (p Phase) Next() Phase {
	if p == PhasePresenting {
		return PhaseIdle
	}
	return p + 1
}

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseUpdating:
		return "Updating"
	case PhaseRenderingLeft:
		return "RenderingLeft"
	case PhaseRenderingRight:
		return "RenderingRight"
	case PhaseCompositing:
		return "Compositing"
	case PhasePresenting:
		return "Presenting"
	}
	return "Unknown"
}
