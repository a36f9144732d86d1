package blockscan

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/huandu/xstrings"
)

// Field is a single entry of a notification's ordered field list.
type Field struct {
	Key    string `json:"-"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Notification is a rendered report ready for delivery.
type Notification struct {
	Category    Category `json:"-"`
	Height      uint64   `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       int      `json:"color"`
	Fields      []Field  `json:"fields"`
}

// Field returns the field with the given key.
func (n Notification) Field(key string) (Field, bool) {
	for _, f := range n.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Keys returns the field keys in display order.
func (n Notification) Keys() []string {
	keys := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		keys[i] = f.Key
	}
	return keys
}

const (
	KeyCurrentBlock       = "current_block_number"
	KeyCurrentBlockTime   = "current_block_timestamp"
	KeyExtrinsicFailed    = "extrinsic_failed"
	KeyExtrinsicSucceeded = "extrinsic_succeeded"
)

const (
	titleScheduleSwap     = "🌟 __ NEW SCHEDULE_SWAP_COLDKEY DETECTED __ 🌟"
	titleScheduleDissolve = "🌟 __ NEW SCHEDULE_NETWORK_DISSOLVE DETECTED __ 🌟"
	titleVote             = "🗳️ __ NEW SENATE VOTE DETECTED __ 🗳️"
	titleColdkeySwapped   = "🚨 __ COLDKEY SWAPPED __ 🚨"
	titleNetworkDissolved = "🚨 __ NETWORK DISSOLVED __ 🚨"
)

var fixedFields = map[string]Field{
	KeyCurrentBlock:       {Name: "🧱 **CURRENT BLOCK** 🧱"},
	KeyCurrentBlockTime:   {Name: "🕙 **CURRENT BLOCK TIMESTAMP**"},
	KeyExtrinsicFailed:    {Name: "🔴 **Extrinsic Failed** 🔴", Value: "The extrinsic failed to execute."},
	KeyExtrinsicSucceeded: {Name: "🟢 **Extrinsic Succeeded** 🟢", Value: "The extrinsic executed successfully."},
}

// fieldName renders the display name of a domain field key.
func fieldName(key string) string {
	if f, ok := fixedFields[key]; ok {
		return f.Name
	}
	return "🔑 **" + strings.ToUpper(key) + "**"
}

// reportBuilder accumulates the fields of a single notification.
type reportBuilder struct {
	ctx      context.Context
	enricher Enricher
	links    LinkTemplates

	n Notification
}

func (s *service) newReport(ctx context.Context, category Category, title string, height uint64) *reportBuilder {
	b := &reportBuilder{
		ctx:      ctx,
		enricher: s.enricher,
		links:    s.links,
		n: Notification{
			Category: category,
			Height:   height,
			Title:    title,
			Color:    category.Color(),
		},
	}
	b.add(KeyCurrentBlock, strconv.FormatUint(height, 10))
	return b
}

// add appends a domain field, annotating account keys with what the enricher
// knows about them. The block number key is only ever written once.
func (b *reportBuilder) add(key, value string) *reportBuilder {
	if key == KeyCurrentBlock && len(b.n.Fields) > 0 {
		return b
	}

	if line, ok := annotation(b.ctx, b.enricher, b.links, key, value); ok {
		value = value + "\n" + line
	}

	b.n.Fields = append(b.n.Fields, Field{
		Key:   key,
		Name:  fieldName(key),
		Value: value,
	})
	return b
}

func (b *reportBuilder) marker(success bool) *reportBuilder {
	key := KeyExtrinsicFailed
	if success {
		key = KeyExtrinsicSucceeded
	}

	f := fixedFields[key]
	f.Key = key
	b.n.Fields = append(b.n.Fields, f)
	return b
}

func (b *reportBuilder) timestamp(ts time.Time, ok bool) *reportBuilder {
	if !ok {
		return b
	}
	b.n.Fields = append(b.n.Fields, Field{
		Key:   KeyCurrentBlockTime,
		Name:  fieldName(KeyCurrentBlockTime),
		Value: ts.Format(time.RFC3339),
	})
	return b
}

func (b *reportBuilder) build() Notification {
	return b.n
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// buildScheduledSwapReport renders a schedule_swap_coldkey outcome. A failed
// extrinsic gets the failure marker instead of domain fields.
func (s *service) buildScheduledSwapReport(ctx context.Context, snap Snapshot, outcome Outcome) (Notification, error) {
	b := s.newReport(ctx, CategorySwap, titleScheduleSwap, snap.Height)
	if !outcome.Success {
		return b.marker(false).timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
	}

	swap, found, err := ExtractScheduledSwap(outcome.Events)
	if err != nil {
		return Notification{}, err
	}
	if !found {
		return Notification{}, missingEventError(EventColdkeySwapScheduled)
	}

	b.add("old_coldkey", swap.OldColdkey).
		add("new_coldkey", swap.NewColdkey).
		add("execution_block", formatUint(swap.ExecutionBlock))
	return b.timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
}

// buildScheduledDissolveReport renders a schedule_dissolve_network outcome.
func (s *service) buildScheduledDissolveReport(ctx context.Context, snap Snapshot, outcome Outcome) (Notification, error) {
	b := s.newReport(ctx, CategoryDissolve, titleScheduleDissolve, snap.Height)
	if !outcome.Success {
		return b.marker(false).timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
	}

	dissolve, found, err := ExtractScheduledDissolve(outcome.Events)
	if err != nil {
		return Notification{}, err
	}
	if !found {
		return Notification{}, missingEventError(EventDissolveNetworkScheduled)
	}

	b.add("netuid", formatUint(uint64(dissolve.Netuid))).
		add("owner_coldkey", dissolve.OwnerColdkey).
		add("execution_block", formatUint(dissolve.ExecutionBlock))
	return b.timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
}

// buildVoteReport renders a senate vote. Vote reports always carry the outcome
// marker; the vote itself is only shown when the call succeeded.
func (s *service) buildVoteReport(ctx context.Context, snap Snapshot, outcome Outcome) (Notification, error) {
	b := s.newReport(ctx, CategoryVote, titleVote, snap.Height)
	if !outcome.Success {
		return b.marker(false).timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
	}

	vote, err := ExtractVote(snap.Extrinsics[outcome.ExtrinsicIndex])
	if err != nil {
		return Notification{}, err
	}

	b.add("hotkey", vote.Hotkey).
		add("proposal", vote.Proposal).
		add("approve", strconv.FormatBool(vote.Approve)).
		add("index", formatUint(vote.Index))
	return b.marker(true).timestamp(BlockTimestamp(snap.Extrinsics)).build(), nil
}

// buildColdkeySwappedReport renders an executed coldkey swap.
func (s *service) buildColdkeySwappedReport(ctx context.Context, snap Snapshot, swapped ColdkeySwappedAttributes) Notification {
	return s.newReport(ctx, CategoryDirectSwap, titleColdkeySwapped, snap.Height).
		add("old_coldkey", swapped.OldColdkey).
		add("new_coldkey", swapped.NewColdkey).
		timestamp(BlockTimestamp(snap.Extrinsics)).
		build()
}

// buildNetworkDissolvedReport renders an executed subnet dissolution. The
// attribute set varies between runtimes, so every attribute is listed in key
// order.
func (s *service) buildNetworkDissolvedReport(ctx context.Context, snap Snapshot, attrs map[string]any) Notification {
	b := s.newReport(ctx, CategoryDirectDissolve, titleNetworkDissolved, snap.Height)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		b.add(xstrings.ToSnakeCase(k), asString(attrs[k]))
	}
	return b.timestamp(BlockTimestamp(snap.Extrinsics)).build()
}
