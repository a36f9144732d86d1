package blockscan

// NotFound marks a call kind with no matching extrinsic in the block.
const NotFound = -1

// Matches holds, per call kind, the index of the matching extrinsic.
type Matches map[CallKind]int

// Index returns the extrinsic index matched for kind, or NotFound.
func (m Matches) Index(kind CallKind) int {
	if idx, ok := m[kind]; ok {
		return idx
	}
	return NotFound
}

// MatchExtrinsics scans the extrinsic list once and records, for every kind in
// table, the index of the last extrinsic calling it. Kinds without a match are
// absent from the result, which Index reports as NotFound.
func MatchExtrinsics(extrinsics []Extrinsic, table CallTable) Matches {
	matches := make(Matches, len(table))
	for i, ext := range extrinsics {
		if !ext.IsCall() {
			continue
		}

		kind, ok := table[CallKey{Module: ext.Module, Function: ext.Function}]
		if !ok {
			continue
		}

		matches[kind] = i
	}

	return matches
}

// Outcome is the correlation of one extrinsic with the events it emitted.
// Events keeps every event tagged with the extrinsic index in block order,
// including on failure.
type Outcome struct {
	ExtrinsicIndex int
	Success        bool
	Events         []Event
}

// Correlate collects the events emitted by the extrinsic at idx and decides
// whether it succeeded. Callers must not pass NotFound.
func Correlate(events []Event, idx int) Outcome {
	outcome := Outcome{ExtrinsicIndex: idx}
	for _, ev := range events {
		if !ev.AppliesTo(idx) {
			continue
		}

		outcome.Events = append(outcome.Events, ev)
		if ev.ID == EventExtrinsicSuccess {
			outcome.Success = true
		}
	}

	return outcome
}
