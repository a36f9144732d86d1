package blockscan

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CallArg is a single named argument of a runtime call, kept in call order.
type CallArg struct {
	Name  string
	Value any
}

// Extrinsic is one entry of a block's extrinsic list.
//
// Index is the position of the extrinsic inside the block and is the join key
// used by events to reference the extrinsic that caused them. Module and
// Function are empty when the extrinsic could not be decoded as a call.
type Extrinsic struct {
	Index    int
	Module   string
	Function string
	Args     []CallArg
}

// IsCall reports whether the extrinsic carries a decoded call.
func (e Extrinsic) IsCall() bool {
	return e.Module != "" && e.Function != ""
}

// Arg returns the value of the named call argument.
func (e Extrinsic) Arg(name string) (any, bool) {
	for _, arg := range e.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Event is a runtime event emitted while the block was applied.
//
// ExtrinsicIdx is nil for block-level events (initialization and finalization
// phases) and otherwise points at the index of the extrinsic that emitted it.
type Event struct {
	Module       string
	ID           string
	Attributes   map[string]any
	ExtrinsicIdx *int
}

// AppliesTo reports whether the event was emitted by the extrinsic at idx.
func (e Event) AppliesTo(idx int) bool {
	return e.ExtrinsicIdx != nil && *e.ExtrinsicIdx == idx
}

// Snapshot is the immutable view of a single block used by one inspection pass.
type Snapshot struct {
	Height     uint64
	Hash       string
	Extrinsics []Extrinsic
	Events     []Event
}

const (
	timestampModule   = "Timestamp"
	timestampFunction = "set"
	timestampArgument = "now"
)

// BlockTimestamp returns the time set by the block's Timestamp.set inherent.
// A block carries at most one such extrinsic; the boolean is false when it is
// absent or its argument cannot be read as milliseconds.
func BlockTimestamp(extrinsics []Extrinsic) (time.Time, bool) {
	for _, ext := range extrinsics {
		if ext.Module != timestampModule || ext.Function != timestampFunction {
			continue
		}

		value, ok := ext.Arg(timestampArgument)
		if !ok && len(ext.Args) > 0 {
			value, ok = ext.Args[0].Value, true
		}
		if !ok {
			return time.Time{}, false
		}

		ms, ok := asUint64(value)
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)).UTC(), true
	}

	return time.Time{}, false
}

// asUint64 converts the loosely typed numeric values found in decoded chain
// payloads (JSON numbers, decimal strings, hex strings, Go integers).
func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint:
		return uint64(n), true
	case int:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case int32:
		return uint64(n), n >= 0
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, false
		}
		return uint64(n), true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		return u, err == nil
	case string:
		s := strings.TrimSpace(n)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			u, err := strconv.ParseUint(s[2:], 16, 64)
			return u, err == nil
		}
		u, err := strconv.ParseUint(s, 10, 64)
		return u, err == nil
	default:
		return 0, false
	}
}

// asBool converts decoded boolean values, accepting "true"/"false" strings.
func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	default:
		return false, false
	}
}

// asString renders a decoded value as text. Strings are returned unchanged.
func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case map[string]any, []any:
		raw, err := json.Marshal(s)
		if err != nil {
			return fmt.Sprint(s)
		}
		return string(raw)
	default:
		return fmt.Sprint(s)
	}
}
