package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/taowatch/internal/enrichment"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// enrichmentKeyPrefix is the namespace of the lookup tables. Each relation is
// a hash; a reload writes the next generation under the staging suffix and
// renames it over the live key in a single transaction.
const (
	enrichmentKeyPrefix = "enrichment"
	stagingSuffix       = ":next"
)

var (
	validatorsByColdkeyKey = enrichmentKeyPrefix + ":validators:coldkey"
	validatorsByHotkeyKey  = enrichmentKeyPrefix + ":validators:hotkey"
	subnetOwnersKey        = enrichmentKeyPrefix + ":owners"
)

// validatorRecord is the JSON value stored in both validator hashes.
type validatorRecord struct {
	Coldkey string          `json:"coldkey"`
	Hotkey  string          `json:"hotkey"`
	Name    string          `json:"name"`
	Stake   decimal.Decimal `json:"stake"`
}

func (c *client) ValidatorByColdkey(ctx context.Context, coldkey string) (enrichment.Validator, error) {
	return c.validator(ctx, validatorsByColdkeyKey, coldkey)
}

func (c *client) ValidatorByHotkey(ctx context.Context, hotkey string) (enrichment.Validator, error) {
	return c.validator(ctx, validatorsByHotkeyKey, hotkey)
}

func (c *client) validator(ctx context.Context, key, field string) (enrichment.Validator, error) {
	raw, err := c.conn.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = enrichment.ErrNotFound
		}
		return enrichment.Validator{}, err
	}

	var rec validatorRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return enrichment.Validator{}, fmt.Errorf("invalid validator record %s[%s]: %w", key, field, err)
	}

	return enrichment.Validator{
		Coldkey: rec.Coldkey,
		Hotkey:  rec.Hotkey,
		Name:    rec.Name,
		Stake:   rec.Stake,
	}, nil
}

func (c *client) SubnetOwnedBy(ctx context.Context, coldkey string) (uint16, error) {
	raw, err := c.conn.HGet(ctx, subnetOwnersKey, coldkey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = enrichment.ErrNotFound
		}
		return 0, err
	}

	netuid, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid netuid %q for owner %s: %w", raw, coldkey, err)
	}

	return uint16(netuid), nil
}

// Reload replaces every lookup relation with the content of table. When a key
// appears more than once the first record wins. Readers observe either the
// previous or the new generation.
func (c *client) Reload(ctx context.Context, table enrichment.Table) error {
	var (
		byColdkey = make(map[string]any, len(table.Validators))
		byHotkey  = make(map[string]any, len(table.Validators))
		owners    = make(map[string]any, len(table.Owners))
	)

	for _, v := range table.Validators {
		raw, err := json.Marshal(validatorRecord{
			Coldkey: v.Coldkey,
			Hotkey:  v.Hotkey,
			Name:    v.Name,
			Stake:   v.Stake,
		})
		if err != nil {
			return err
		}

		if _, ok := byColdkey[v.Coldkey]; !ok && v.Coldkey != "" {
			byColdkey[v.Coldkey] = string(raw)
		}
		if _, ok := byHotkey[v.Hotkey]; !ok && v.Hotkey != "" {
			byHotkey[v.Hotkey] = string(raw)
		}
	}

	for _, o := range table.Owners {
		if _, ok := owners[o.Coldkey]; !ok {
			owners[o.Coldkey] = strconv.FormatUint(uint64(o.Netuid), 10)
		}
	}

	generations := []struct {
		key    string
		values map[string]any
	}{
		{key: validatorsByColdkeyKey, values: byColdkey},
		{key: validatorsByHotkeyKey, values: byHotkey},
		{key: subnetOwnersKey, values: owners},
	}

	_, err := c.conn.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, g := range generations {
			staging := g.key + stagingSuffix
			pipe.Del(ctx, staging)
			if len(g.values) > 0 {
				pipe.HSet(ctx, staging, g.values)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("stage enrichment tables: %w", err)
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, g := range generations {
			if len(g.values) == 0 {
				pipe.Del(ctx, g.key)
				continue
			}
			pipe.Rename(ctx, g.key+stagingSuffix, g.key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("swap enrichment tables: %w", err)
	}

	return nil
}

var _ enrichment.Repository = new(client)
