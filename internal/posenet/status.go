package posenet

import (
	"rtpose/internal/nvrt"
	"rtpose/pkg/types"
)

// Ready reports whether the net accepts forward passes.
func (n *Net) Ready() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.state == StateReady
}

// Status returns a read-only projection of the net.
func (n *Net) Status() types.NetStatus {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return types.NetStatus{
		State:         string(n.state),
		PlanPath:      n.cfg.PlanPath,
		GPUID:         n.cfg.GPUID,
		OutputName:    n.cfg.OutputName,
		ForwardPasses: n.forwardCount,
		Err:           n.lastErr,
	}
}

// SanityReport describes whether this binary can actually run inference.
type SanityReport struct {
	DeviceBuilt bool   `json:"device_built"`
	PlanFound   bool   `json:"plan_found"`
	PlanPath    string `json:"plan_path"`
}

// SanityCheck validates runtime prerequisites without mutating state.
func (n *Net) SanityCheck() SanityReport {
	return SanityReport{
		DeviceBuilt: nvrt.Built(),
		PlanFound:   true, // construction already verified the plan path
		PlanPath:    n.cfg.PlanPath,
	}
}
