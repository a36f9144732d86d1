package enrichment

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/taowatch/internal/pkg/logger"
)

// Resolver answers lookups for report annotations. It never fails: errors from
// the store are logged and reported as "not found".
type Resolver struct {
	reader Reader
}

// NewResolver returns a Resolver reading from r.
func NewResolver(r Reader) *Resolver {
	return &Resolver{reader: r}
}

func (r *Resolver) ResolveValidatorByColdkey(ctx context.Context, coldkey string) ValidatorMatch {
	v, err := r.reader.ValidatorByColdkey(ctx, coldkey)
	if err != nil {
		r.degrade(ctx, "validator by coldkey", coldkey, err)
		return ValidatorMatch{}
	}

	return ValidatorMatch{Name: v.Name, Counterpart: v.Hotkey, Found: true}
}

func (r *Resolver) ResolveValidatorByHotkey(ctx context.Context, hotkey string) ValidatorMatch {
	v, err := r.reader.ValidatorByHotkey(ctx, hotkey)
	if err != nil {
		r.degrade(ctx, "validator by hotkey", hotkey, err)
		return ValidatorMatch{}
	}

	return ValidatorMatch{Name: v.Name, Counterpart: v.Coldkey, Found: true}
}

func (r *Resolver) ResolveSubnetOwner(ctx context.Context, coldkey string) (uint16, bool) {
	netuid, err := r.reader.SubnetOwnedBy(ctx, coldkey)
	if err != nil {
		r.degrade(ctx, "subnet owner", coldkey, err)
		return 0, false
	}

	return netuid, true
}

func (r *Resolver) degrade(ctx context.Context, lookup, key string, err error) {
	if errors.Is(err, ErrNotFound) {
		return
	}

	logger.Warn(ctx, "enrichment lookup degraded",
		"enrichment.lookup", lookup,
		"enrichment.key", key,
		"error", fmt.Errorf("%w: %w", ErrUnavailable, err),
	)
}
