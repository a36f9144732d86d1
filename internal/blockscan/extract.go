package blockscan

import "fmt"

// ScheduledSwap is the payload of a successful schedule_swap_coldkey call.
type ScheduledSwap struct {
	OldColdkey     string
	NewColdkey     string
	ExecutionBlock uint64
}

// ScheduledDissolve is the payload of a successful schedule_dissolve_network call.
type ScheduledDissolve struct {
	Netuid         uint16
	OwnerColdkey   string
	ExecutionBlock uint64
}

// Vote is the payload of a senate vote call, read from its arguments.
type Vote struct {
	Hotkey   string
	Proposal string
	Approve  bool
	Index    uint64
}

// findEvent returns the first event with the given identifier.
func findEvent(events []Event, id string) (Event, bool) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

// ExtractScheduledSwap reads the ColdkeySwapScheduled event from the events of
// a schedule_swap_coldkey extrinsic. The boolean is false, with a zero payload,
// when the event is absent.
func ExtractScheduledSwap(events []Event) (ScheduledSwap, bool, error) {
	ev, ok := findEvent(events, EventColdkeySwapScheduled)
	if !ok {
		return ScheduledSwap{}, false, nil
	}

	var attrs ColdkeySwapScheduledAttributes
	if err := decodeAttributes(ev, &attrs); err != nil {
		return ScheduledSwap{}, true, err
	}

	return ScheduledSwap{
		OldColdkey:     attrs.OldColdkey,
		NewColdkey:     attrs.NewColdkey,
		ExecutionBlock: uint64(*attrs.ExecutionBlock),
	}, true, nil
}

// ExtractScheduledDissolve reads the DissolveNetworkScheduled event from the
// events of a schedule_dissolve_network extrinsic. The boolean is false, with a
// zero payload, when the event is absent.
func ExtractScheduledDissolve(events []Event) (ScheduledDissolve, bool, error) {
	ev, ok := findEvent(events, EventDissolveNetworkScheduled)
	if !ok {
		return ScheduledDissolve{}, false, nil
	}

	var attrs DissolveNetworkScheduledAttributes
	if err := decodeAttributes(ev, &attrs); err != nil {
		return ScheduledDissolve{}, true, err
	}

	return ScheduledDissolve{
		Netuid:         uint16(*attrs.Netuid),
		OwnerColdkey:   attrs.Account,
		ExecutionBlock: uint64(*attrs.ExecutionBlock),
	}, true, nil
}

// voteArguments are the named arguments of SubtensorModule.vote, in call order.
var voteArguments = []string{"hotkey", "proposal", "index", "approve"}

// ExtractVote reads the vote payload from the call arguments of ext.
// Every named argument is required; a missing one yields ErrMissingArgument and
// a value of the wrong type yields ErrMalformedAttributes.
func ExtractVote(ext Extrinsic) (Vote, error) {
	values := make(map[string]any, len(voteArguments))
	for _, name := range voteArguments {
		v, ok := ext.Arg(name)
		if !ok || v == nil {
			return Vote{}, fmt.Errorf("%w: %s", ErrMissingArgument, name)
		}
		values[name] = v
	}

	approve, ok := asBool(values["approve"])
	if !ok {
		return Vote{}, fmt.Errorf("%w: approve: %v", ErrMalformedAttributes, values["approve"])
	}

	index, ok := asUint64(values["index"])
	if !ok {
		return Vote{}, fmt.Errorf("%w: index: %v", ErrMalformedAttributes, values["index"])
	}

	return Vote{
		Hotkey:   asString(values["hotkey"]),
		Proposal: asString(values["proposal"]),
		Approve:  approve,
		Index:    index,
	}, nil
}
