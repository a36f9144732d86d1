package blockscan

import (
	"context"
	"errors"
)

// Bundle is the result of inspecting one block.
type Bundle struct {
	Height        uint64
	Notifications []Notification

	// CacheStale is set when the block executed a coldkey swap or a subnet
	// dissolution, which invalidates the enrichment tables.
	CacheStale bool
}

// Service inspects block snapshots for governance activity.
type Service interface {
	// Inspect matches, correlates, extracts and renders every watched activity
	// of snap. Branches are isolated: a failing branch is reported as a
	// *BranchError joined into the returned error while the notifications of
	// its siblings are still returned in the bundle.
	Inspect(ctx context.Context, snap Snapshot) (Bundle, error)
}

type service struct {
	enricher    Enricher
	calls       CallTable
	directNames DirectEventNames
	links       LinkTemplates
}

var _ Service = (*service)(nil)

type scheduledBuilder func(s *service, ctx context.Context, snap Snapshot, outcome Outcome) (Notification, error)

// scheduledBranches are rendered in this order when present.
var scheduledBranches = []struct {
	kind  CallKind
	build scheduledBuilder
}{
	{kind: KindScheduleColdkeySwap, build: (*service).buildScheduledSwapReport},
	{kind: KindScheduleDissolveNetwork, build: (*service).buildScheduledDissolveReport},
	{kind: KindVote, build: (*service).buildVoteReport},
}

func (s *service) Inspect(ctx context.Context, snap Snapshot) (Bundle, error) {
	bundle := Bundle{Height: snap.Height}

	var errs []error
	branchFailed := func(kind CallKind, err error) {
		errs = append(errs, &BranchError{Height: snap.Height, Kind: kind, Err: err})
	}

	matches := MatchExtrinsics(snap.Extrinsics, s.calls)
	for _, branch := range scheduledBranches {
		idx := matches.Index(branch.kind)
		if idx == NotFound {
			continue
		}

		outcome := Correlate(snap.Events, idx)
		n, err := branch.build(s, ctx, snap, outcome)
		if err != nil {
			branchFailed(branch.kind, err)
			continue
		}
		bundle.Notifications = append(bundle.Notifications, n)
	}

	direct := ScanDirectEvents(snap.Events, s.directNames)
	if direct.SwapSeen {
		if direct.SwapErr != nil {
			branchFailed(KindColdkeySwapped, direct.SwapErr)
		} else {
			bundle.Notifications = append(bundle.Notifications, s.buildColdkeySwappedReport(ctx, snap, direct.Swapped))
		}
	}
	if direct.DissolveSeen {
		bundle.Notifications = append(bundle.Notifications, s.buildNetworkDissolvedReport(ctx, snap, direct.Dissolved))
	}
	bundle.CacheStale = direct.Stale()

	return bundle, errors.Join(errs...)
}

type config struct {
	calls       CallTable
	directNames DirectEventNames
	links       LinkTemplates
}

type Option func(*config)

// WithCallTable replaces the calls matched against extrinsics.
func WithCallTable(table CallTable) Option {
	return func(c *config) {
		c.calls = table
	}
}

// WithDirectEventNames replaces the identifiers of the executed swap and
// dissolution events.
func WithDirectEventNames(names DirectEventNames) Option {
	return func(c *config) {
		c.directNames = names
	}
}

// WithLinkTemplates replaces the URL patterns used in annotations.
func WithLinkTemplates(links LinkTemplates) Option {
	return func(c *config) {
		c.links = links
	}
}

// New returns an inspection service. A nil enricher disables annotations.
func New(enricher Enricher, opts ...Option) *service {
	cfg := config{
		calls:       DefaultCallTable(),
		directNames: DefaultDirectEventNames(),
		links:       DefaultLinkTemplates(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if enricher == nil {
		enricher = nopEnricher{}
	}

	return &service{
		enricher:    enricher,
		calls:       cfg.calls,
		directNames: cfg.directNames,
		links:       cfg.links,
	}
}
