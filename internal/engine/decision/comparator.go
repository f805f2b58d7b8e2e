package decision

import "go.trai.ch/rebuild/internal/core/domain"

// OutputIndex is reported by FirstStale when the output's own timestamp is unknown.
const OutputIndex = -1

// Compare reports whether an output stamped out is stale relative to its inputs.
// Any unknown timestamp makes the output stale, as does an input at or after it.
func Compare(out domain.Timestamp, ins []domain.Timestamp) bool {
	_, stale := FirstStale(out, ins)
	return stale
}

// FirstStale is Compare that also reports which timestamp decided the verdict:
// OutputIndex for the output itself, otherwise the index into ins.
func FirstStale(out domain.Timestamp, ins []domain.Timestamp) (int, bool) {
	if !out.Known() {
		return OutputIndex, true
	}
	for i, in := range ins {
		if in.NotBefore(out) {
			return i, true
		}
	}
	return 0, false
}
