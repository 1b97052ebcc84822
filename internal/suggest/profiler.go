package suggest

// =====================
// Диагностика диспетчера
// =====================

// Recorder observes every dispatched correction. The production default is
// a no-op; swapping in a real implementation is a construction-time choice,
// so the hot path carries no build tags and no conditionals.
type Recorder interface {
	Record(ct CorrectionType, node *Node)
}

type nopRecorder struct{}

func (nopRecorder) Record(CorrectionType, *Node) {}

// CountingRecorder tallies dispatches per correction type.
type CountingRecorder struct {
	counts [ctCount]int
	other  int
}

func (r *CountingRecorder) Record(ct CorrectionType, _ *Node) {
	if ct >= 0 && ct < ctCount {
		r.counts[ct]++
		return
	}
	r.other++
}

// Count returns how many times ct was dispatched.
func (r *CountingRecorder) Count(ct CorrectionType) int {
	if ct >= 0 && ct < ctCount {
		return r.counts[ct]
	}
	return r.other
}
