package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gabapcia/taowatch/internal/pkg/logger"
	"github.com/gabapcia/taowatch/internal/pkg/ss58"
	"github.com/gabapcia/taowatch/internal/pkg/types"
	"github.com/gabapcia/taowatch/internal/pkg/x/chflow"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrEmptyRegistry is returned when the registry yields no validator and no
	// subnet owner. The current table is kept.
	ErrEmptyRegistry = errors.New("registry returned no records")

	// ErrTooManyPages is returned when validator pagination does not terminate.
	ErrTooManyPages = errors.New("registry pagination exceeded page limit")
)

const (
	defaultSchedule = "@every 1h"
	defaultMaxPages = 500
)

// Registry is the external source the lookup tables are rebuilt from.
type Registry interface {
	// Validators returns one page of validators, starting at page 1. An empty
	// page marks the end of the listing.
	Validators(ctx context.Context, page int) ([]Validator, error)

	// SubnetOwners returns the current owner of every subnet. Coldkeys may be
	// hex encoded account ids.
	SubnetOwners(ctx context.Context) ([]SubnetOwner, error)
}

// Refresher rebuilds the lookup tables from the registry, on a schedule and on
// demand.
type Refresher struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	refreshMu sync.Mutex
	triggerCh chan struct{}

	registry Registry
	store    Reloader

	schedule string
	minStake decimal.Decimal
	prefix   uint16
	maxPages int
}

// Refresh fetches every validator and subnet owner and replaces the stored
// table. Concurrent calls are serialized.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	validators, err := r.fetchValidators(ctx)
	if err != nil {
		return err
	}

	owners, err := r.fetchOwners(ctx)
	if err != nil {
		return err
	}

	if len(validators) == 0 && len(owners) == 0 {
		return ErrEmptyRegistry
	}

	if err := r.store.Reload(ctx, Table{Validators: validators, Owners: owners}); err != nil {
		return err
	}

	logger.Info(ctx, "enrichment table reloaded",
		"enrichment.validators", len(validators),
		"enrichment.owners", len(owners),
	)
	return nil
}

// fetchValidators walks the validator listing until an empty page and keeps
// those staking more than the minimum. Every hotkey of a coldkey is kept; the
// stores decide which record answers a lookup by coldkey.
func (r *Refresher) fetchValidators(ctx context.Context) ([]Validator, error) {
	var (
		validators []Validator
		seen       = types.NewSet[string]()
	)

	for page := 1; ; page++ {
		if page > r.maxPages {
			return nil, fmt.Errorf("%w: %d", ErrTooManyPages, r.maxPages)
		}

		batch, err := r.registry.Validators(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetch validators page %d: %w", page, err)
		}
		if len(batch) == 0 {
			return validators, nil
		}

		for _, v := range batch {
			if v.Coldkey == "" || !v.Stake.GreaterThan(r.minStake) {
				continue
			}
			if seen.Add(v.Coldkey + "/" + v.Hotkey) {
				validators = append(validators, v)
			}
		}
	}
}

// fetchOwners returns the subnet owners with SS58 coldkeys. The first subnet
// listed for a coldkey wins.
func (r *Refresher) fetchOwners(ctx context.Context) ([]SubnetOwner, error) {
	raw, err := r.registry.SubnetOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch subnet owners: %w", err)
	}

	var (
		owners []SubnetOwner
		seen   = types.NewSet[string]()
	)
	for _, o := range raw {
		coldkey, err := r.normalizeAccount(o.Coldkey)
		if err != nil {
			logger.Warn(ctx, "skipping subnet owner",
				"subnet.netuid", o.Netuid,
				"subnet.owner", o.Coldkey,
				"error", err,
			)
			continue
		}

		if seen.Add(coldkey) {
			owners = append(owners, SubnetOwner{Coldkey: coldkey, Netuid: o.Netuid})
		}
	}

	return owners, nil
}

func (r *Refresher) normalizeAccount(account string) (string, error) {
	if strings.HasPrefix(account, "0x") || strings.HasPrefix(account, "0X") {
		return ss58.EncodeHex(account, r.prefix)
	}
	if !ss58.IsValid(account) {
		return "", fmt.Errorf("%w: %q", ss58.ErrInvalidAddress, account)
	}
	return account, nil
}

// Trigger requests an asynchronous refresh. Requests made while one is
// already pending are coalesced. It never blocks.
func (r *Refresher) Trigger() {
	chflow.Offer(r.triggerCh, struct{}{})
}

func (r *Refresher) runRefresh(ctx context.Context, reason string) {
	if err := r.Refresh(ctx); err != nil {
		logger.Error(ctx, "enrichment refresh failed",
			"refresh.reason", reason,
			"error", err,
		)
	}
}

func (r *Refresher) consumeTriggers(ctx context.Context) {
	for {
		if _, ok := chflow.Receive[struct{}](ctx, r.triggerCh); !ok {
			return
		}
		r.runRefresh(ctx, "trigger")
	}
}

// Start runs the refresh schedule and serves Trigger requests until ctx is
// canceled or Close is called.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	scheduler := cron.New(cron.WithChain(cron.Recover(cronLogger{ctx: ctx})))
	if _, err := scheduler.AddFunc(r.schedule, func() { r.runRefresh(ctx, "schedule") }); err != nil {
		cancel()
		return fmt.Errorf("invalid refresh schedule %q: %w", r.schedule, err)
	}

	go r.consumeTriggers(ctx)
	scheduler.Start()

	r.closeFunc = func() {
		cancel()
		<-scheduler.Stop().Done()
	}
	r.isStarted = true
	return nil
}

func (r *Refresher) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closeFunc != nil {
		r.closeFunc()
	}
	r.isStarted = false
	r.closeFunc = nil
}

// cronLogger routes scheduler diagnostics to the global logger.
type cronLogger struct {
	ctx context.Context
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	logger.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	logger.Error(l.ctx, "cron: "+msg, append(keysAndValues, "error", err)...)
}

type refresherConfig struct {
	schedule string
	minStake decimal.Decimal
	prefix   uint16
	maxPages int
}

type RefresherOption func(*refresherConfig)

// WithSchedule sets the cron spec of periodic refreshes.
func WithSchedule(spec string) RefresherOption {
	return func(c *refresherConfig) {
		c.schedule = spec
	}
}

// WithMinStake sets the stake a validator must exceed to be kept.
func WithMinStake(stake decimal.Decimal) RefresherOption {
	return func(c *refresherConfig) {
		c.minStake = stake
	}
}

// WithSS58Prefix sets the network prefix used for hex owner accounts.
func WithSS58Prefix(prefix uint16) RefresherOption {
	return func(c *refresherConfig) {
		c.prefix = prefix
	}
}

// WithMaxPages bounds validator pagination.
func WithMaxPages(n int) RefresherOption {
	return func(c *refresherConfig) {
		c.maxPages = n
	}
}

func NewRefresher(registry Registry, store Reloader, opts ...RefresherOption) *Refresher {
	cfg := refresherConfig{
		schedule: defaultSchedule,
		minStake: decimal.NewFromInt(1000),
		prefix:   ss58.SubstratePrefix,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Refresher{
		triggerCh: make(chan struct{}, 1),
		registry:  registry,
		store:     store,
		schedule:  cfg.schedule,
		minStake:  cfg.minStake,
		prefix:    cfg.prefix,
		maxPages:  cfg.maxPages,
	}
}
