package blockscan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/taowatch/internal/pkg/validator"
)

// Number is an unsigned chain quantity that decodes from either a JSON number
// or a decimal/hex string, as runtimes and indexers disagree on the encoding.
type Number uint64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	v, ok := asUint64(raw)
	if !ok {
		return fmt.Errorf("invalid unsigned number %s", string(data))
	}

	*n = Number(v)
	return nil
}

// ColdkeySwapScheduledAttributes is the schema of the ColdkeySwapScheduled event.
type ColdkeySwapScheduledAttributes struct {
	OldColdkey     string  `json:"old_coldkey" validate:"required"`
	NewColdkey     string  `json:"new_coldkey" validate:"required"`
	ExecutionBlock *Number `json:"execution_block" validate:"required"`
}

// DissolveNetworkScheduledAttributes is the schema of the DissolveNetworkScheduled event.
type DissolveNetworkScheduledAttributes struct {
	Account        string  `json:"account" validate:"required"`
	Netuid         *Number `json:"netuid" validate:"required,max=65535"`
	ExecutionBlock *Number `json:"execution_block" validate:"required"`
}

// ColdkeySwappedAttributes is the schema of the ColdkeySwapped event.
type ColdkeySwappedAttributes struct {
	OldColdkey string `json:"old_coldkey" validate:"required"`
	NewColdkey string `json:"new_coldkey" validate:"required"`
}

// decodeAttributes parses the attribute mapping of ev into the typed schema dst.
// Attributes not present in the schema are ignored; missing required ones are
// reported as ErrMalformedAttributes.
func decodeAttributes(ev Event, dst any) error {
	raw, err := json.Marshal(ev.Attributes)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedAttributes, ev.ID, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedAttributes, ev.ID, err)
	}

	if err := validator.Validate(dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedAttributes, ev.ID, err)
	}

	return nil
}
