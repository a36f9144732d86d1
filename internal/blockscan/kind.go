package blockscan

// CallKind enumerates the governance activity watched by the scanner.
type CallKind uint8

const (
	KindUnknown CallKind = iota
	KindScheduleColdkeySwap
	KindScheduleDissolveNetwork
	KindVote
	KindColdkeySwapped
	KindNetworkDissolved
)

// String returns the kind name used in logs and error messages.
func (k CallKind) String() string {
	switch k {
	case KindScheduleColdkeySwap:
		return "ScheduleColdkeySwap"
	case KindScheduleDissolveNetwork:
		return "ScheduleDissolveNetwork"
	case KindVote:
		return "Vote"
	case KindColdkeySwapped:
		return "ColdkeySwapped"
	case KindNetworkDissolved:
		return "NetworkDissolved"
	default:
		return "Unknown"
	}
}

// CallKey identifies a runtime call by pallet and function name.
type CallKey struct {
	Module   string
	Function string
}

// CallTable maps runtime calls to the kind they represent.
type CallTable map[CallKey]CallKind

const subtensorModule = "SubtensorModule"

// DefaultCallTable returns the subtensor calls the scanner matches extrinsics against.
func DefaultCallTable() CallTable {
	return CallTable{
		{Module: subtensorModule, Function: "schedule_swap_coldkey"}:     KindScheduleColdkeySwap,
		{Module: subtensorModule, Function: "schedule_dissolve_network"}: KindScheduleDissolveNetwork,
		{Module: subtensorModule, Function: "vote"}:                      KindVote,
	}
}

// Event identifiers read from the runtime.
const (
	EventExtrinsicSuccess         = "ExtrinsicSuccess"
	EventExtrinsicFailed          = "ExtrinsicFailed"
	EventColdkeySwapScheduled     = "ColdkeySwapScheduled"
	EventDissolveNetworkScheduled = "DissolveNetworkScheduled"
)

// DirectEventNames lists the event identifiers that signal an already executed
// swap or dissolution. The runtime renamed the dissolution event between
// releases, so every accepted spelling is listed.
type DirectEventNames struct {
	ColdkeySwapped   []string
	NetworkDissolved []string
}

// DefaultDirectEventNames returns the identifiers emitted by current and past
// subtensor runtimes.
func DefaultDirectEventNames() DirectEventNames {
	return DirectEventNames{
		ColdkeySwapped:   []string{"ColdkeySwapped"},
		NetworkDissolved: []string{"NetworkRemoved", "NetworkDissolved"},
	}
}

// Category groups notifications for color selection and delivery routing.
type Category string

const (
	CategorySwap           Category = "swap"
	CategoryDissolve       Category = "dissolve"
	CategoryVote           Category = "vote"
	CategoryDirectSwap     Category = "direct_swap"
	CategoryDirectDissolve Category = "direct_dissolve"
)

// categoryColors is the embed color per category, as decimal RGB.
var categoryColors = map[Category]int{
	CategorySwap:           642600,
	CategoryDissolve:       342600,
	CategoryVote:           15844367,
	CategoryDirectSwap:     15548997,
	CategoryDirectDissolve: 15548997,
}

// Color returns the fixed embed color for the category.
func (c Category) Color() int {
	return categoryColors[c]
}

// IsDissolve reports whether the category concerns subnet dissolution.
func (c Category) IsDissolve() bool {
	return c == CategoryDissolve || c == CategoryDirectDissolve
}
