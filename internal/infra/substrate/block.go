package substrate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gabapcia/taowatch/internal/blockscan"

	"github.com/huandu/xstrings"
)

type (
	// methodResponse names a call or an event, with camelCase pallet names.
	methodResponse struct {
		Pallet string `json:"pallet"`
		Method string `json:"method"`
	}

	// eventResponse is an event as rendered by the sidecar. Data is either a
	// positional array or an object keyed by field name.
	eventResponse struct {
		Method methodResponse  `json:"method"`
		Data   json.RawMessage `json:"data"`
	}

	// extrinsicResponse is an extrinsic together with the events it emitted.
	extrinsicResponse struct {
		Method  methodResponse  `json:"method"`
		Args    json.RawMessage `json:"args"`
		Success bool            `json:"success"`
		Events  []eventResponse `json:"events"`
	}

	// phaseResponse holds the events of the initialization or finalization phase.
	phaseResponse struct {
		Events []eventResponse `json:"events"`
	}

	// blockResponse is the subset of GET /blocks/{height} used to build a snapshot.
	blockResponse struct {
		Number       string              `json:"number"`
		Hash         string              `json:"hash"`
		OnInitialize phaseResponse       `json:"onInitialize"`
		Extrinsics   []extrinsicResponse `json:"extrinsics"`
		OnFinalize   phaseResponse       `json:"onFinalize"`
	}
)

// eventFields names the positional data of the events the scanner reads, for
// sidecar versions that render event data as arrays.
var eventFields = map[string][]string{
	"SubtensorModule.ColdkeySwapScheduled":     {"old_coldkey", "new_coldkey", "execution_block", "swap_cost"},
	"SubtensorModule.DissolveNetworkScheduled": {"account", "netuid", "execution_block"},
	"SubtensorModule.ColdkeySwapped":           {"old_coldkey", "new_coldkey", "swap_cost"},
	"SubtensorModule.NetworkRemoved":           {"netuid"},
	"SubtensorModule.NetworkDissolved":         {"netuid"},
	"System.ExtrinsicSuccess":                  {"dispatch_info"},
	"System.ExtrinsicFailed":                   {"dispatch_error", "dispatch_info"},
}

func moduleName(pallet string) string {
	return xstrings.FirstRuneToUpper(pallet)
}

func (b blockResponse) toSnapshot() (blockscan.Snapshot, error) {
	height, err := strconv.ParseUint(b.Number, 10, 64)
	if err != nil {
		return blockscan.Snapshot{}, fmt.Errorf("invalid block number %q: %w", b.Number, err)
	}

	snap := blockscan.Snapshot{
		Height:     height,
		Hash:       b.Hash,
		Extrinsics: make([]blockscan.Extrinsic, 0, len(b.Extrinsics)),
	}

	for _, ev := range b.OnInitialize.Events {
		event, err := ev.toEvent(nil)
		if err != nil {
			return blockscan.Snapshot{}, err
		}
		snap.Events = append(snap.Events, event)
	}

	for i, ext := range b.Extrinsics {
		extrinsic, err := ext.toExtrinsic(i)
		if err != nil {
			return blockscan.Snapshot{}, err
		}
		snap.Extrinsics = append(snap.Extrinsics, extrinsic)

		for _, ev := range ext.Events {
			event, err := ev.toEvent(&i)
			if err != nil {
				return blockscan.Snapshot{}, err
			}
			snap.Events = append(snap.Events, event)
		}
	}

	for _, ev := range b.OnFinalize.Events {
		event, err := ev.toEvent(nil)
		if err != nil {
			return blockscan.Snapshot{}, err
		}
		snap.Events = append(snap.Events, event)
	}

	return snap, nil
}

func (e extrinsicResponse) toExtrinsic(index int) (blockscan.Extrinsic, error) {
	args, err := decodeOrderedObject(e.Args)
	if err != nil {
		return blockscan.Extrinsic{}, fmt.Errorf("extrinsic %d args: %w", index, err)
	}

	callArgs := make([]blockscan.CallArg, len(args))
	for i, arg := range args {
		callArgs[i] = blockscan.CallArg{Name: xstrings.ToSnakeCase(arg.Name), Value: arg.Value}
	}

	ext := blockscan.Extrinsic{Index: index, Args: callArgs}
	if e.Method.Pallet != "" && e.Method.Method != "" {
		ext.Module = moduleName(e.Method.Pallet)
		ext.Function = xstrings.ToSnakeCase(e.Method.Method)
	}

	return ext, nil
}

func (e eventResponse) toEvent(extrinsicIdx *int) (blockscan.Event, error) {
	event := blockscan.Event{
		Module:     moduleName(e.Method.Pallet),
		ID:         e.Method.Method,
		Attributes: map[string]any{},
	}
	if extrinsicIdx != nil {
		idx := *extrinsicIdx
		event.ExtrinsicIdx = &idx
	}

	data := bytes.TrimSpace(e.Data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
	case data[0] == '{':
		fields, err := decodeOrderedObject(data)
		if err != nil {
			return blockscan.Event{}, fmt.Errorf("event %s.%s data: %w", event.Module, event.ID, err)
		}
		for _, f := range fields {
			event.Attributes[xstrings.ToSnakeCase(f.Name)] = f.Value
		}
	case data[0] == '[':
		var values []any
		if err := decodeWithNumbers(data, &values); err != nil {
			return blockscan.Event{}, fmt.Errorf("event %s.%s data: %w", event.Module, event.ID, err)
		}

		names := eventFields[event.Module+"."+event.ID]
		for i, v := range values {
			key := strconv.Itoa(i)
			if i < len(names) {
				key = names[i]
			}
			event.Attributes[key] = v
		}
	default:
		return blockscan.Event{}, fmt.Errorf("event %s.%s data: unexpected json %q", event.Module, event.ID, data[0])
	}

	return event, nil
}

func decodeWithNumbers(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(dst)
}

// decodeOrderedObject decodes a JSON object keeping its key order, which for
// call arguments is the order of the call signature.
func decodeOrderedObject(data []byte) ([]blockscan.CallArg, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var fields []blockscan.CallArg
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		fields = append(fields, blockscan.CallArg{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return fields, nil
}
