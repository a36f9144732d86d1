package blockscan

import (
	"maps"
	"slices"
)

// DirectScan is the result of scanning a block for events that report an
// already executed coldkey swap or subnet dissolution.
type DirectScan struct {
	// SwapSeen is set when a coldkey swapped event was found. Swapped holds
	// its attributes unless SwapErr reports them as malformed.
	SwapSeen bool
	Swapped  ColdkeySwappedAttributes
	SwapErr  error

	// DissolveSeen is set when a network dissolved event was found. Its
	// attribute schema differs between runtimes, so it is kept as is.
	DissolveSeen bool
	Dissolved    map[string]any
}

// Stale reports whether the scan found events that invalidate the cached
// validator and subnet owner relations.
func (d DirectScan) Stale() bool {
	return d.SwapSeen || d.DissolveSeen
}

// ScanDirectEvents walks the whole event list, regardless of extrinsic index,
// looking for the identifiers in names. When an event occurs more than once
// the last occurrence wins.
func ScanDirectEvents(events []Event, names DirectEventNames) DirectScan {
	var scan DirectScan
	for _, ev := range events {
		switch {
		case slices.Contains(names.ColdkeySwapped, ev.ID):
			var attrs ColdkeySwappedAttributes
			err := decodeAttributes(ev, &attrs)

			scan.SwapSeen = true
			scan.Swapped = attrs
			scan.SwapErr = err
		case slices.Contains(names.NetworkDissolved, ev.ID):
			attrs := make(map[string]any, len(ev.Attributes))
			maps.Copy(attrs, ev.Attributes)

			scan.DissolveSeen = true
			scan.Dissolved = attrs
		}
	}

	return scan
}
