package blockscan

import (
	"errors"
	"fmt"

	"github.com/gabapcia/taowatch/internal/enrichment"
)

var (
	// ErrSourceUnavailable is returned by chain accessors when a snapshot or the
	// current height cannot be fetched. The poll cycle is aborted.
	ErrSourceUnavailable = errors.New("block source unavailable")

	// ErrMalformedAttributes reports a successful extrinsic whose expected event
	// or event attribute is missing or has an unexpected shape.
	ErrMalformedAttributes = errors.New("malformed event attributes")

	// ErrMissingArgument reports a matched call lacking a required named argument.
	ErrMissingArgument = errors.New("missing call argument")

	// ErrEnrichmentUnavailable is never returned by Inspect; lookups that fail
	// degrade to "not found".
	ErrEnrichmentUnavailable = enrichment.ErrUnavailable
)

// BranchError is the failure of a single report branch while inspecting a block.
// Sibling branches of the same block are not affected by it.
type BranchError struct {
	Height uint64
	Kind   CallKind
	Err    error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("block %d: %s: %v", e.Height, e.Kind, e.Err)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}

// missingEventError reports a successful extrinsic that did not emit the event
// its call kind promises.
func missingEventError(eventID string) error {
	return fmt.Errorf("%w: %s event not emitted", ErrMalformedAttributes, eventID)
}
