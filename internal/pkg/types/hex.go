package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// HexNumber is an unsigned quantity that node JSON-RPC endpoints encode as a
// 0x prefixed hex string, such as the block number of chain_getHeader.
type HexNumber uint64

// ParseHexNumber decodes s, which must carry the 0x prefix and at least one
// digit.
func ParseHexNumber(s string) (HexNumber, error) {
	digits, ok := strings.CutPrefix(strings.ToLower(s), "0x")
	if !ok {
		return 0, fmt.Errorf("hex number %q: missing 0x prefix", s)
	}

	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("hex number %q: %w", s, err)
	}
	return HexNumber(n), nil
}

// String returns the 0x prefixed lowercase encoding.
func (n HexNumber) String() string {
	return "0x" + strconv.FormatUint(uint64(n), 16)
}

// MarshalJSON encodes n as a JSON string.
func (n HexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a JSON string holding a hex number.
func (n *HexNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hex number must be a JSON string: %w", err)
	}

	v, err := ParseHexNumber(s)
	if err != nil {
		return err
	}

	*n = v
	return nil
}
