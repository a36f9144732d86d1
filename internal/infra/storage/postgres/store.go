// Package postgres implements the enrichment repository on Postgres.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/taowatch/internal/enrichment"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrMissingDSN is returned by NewStore when no connection string is given.
var ErrMissingDSN = errors.New("postgres dsn is required")

const schema = `
	CREATE TABLE IF NOT EXISTS validators (
		position INTEGER NOT NULL,
		coldkey  TEXT    NOT NULL,
		hotkey   TEXT    NOT NULL,
		name     TEXT    NOT NULL,
		stake    NUMERIC NOT NULL
	);
	CREATE INDEX IF NOT EXISTS validators_coldkey_idx ON validators (coldkey, position);
	CREATE INDEX IF NOT EXISTS validators_hotkey_idx ON validators (hotkey, position);
	CREATE TABLE IF NOT EXISTS subnet_owners (
		coldkey TEXT    PRIMARY KEY,
		netuid  INTEGER NOT NULL
	);
`

// Store provides Postgres persistence for the enrichment tables.
type Store struct {
	pool *pgxpool.Pool
}

var _ enrichment.Repository = (*Store)(nil)

// NewStore connects to dsn and creates the tables when missing.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create enrichment schema: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) ValidatorByColdkey(ctx context.Context, coldkey string) (enrichment.Validator, error) {
	return s.validator(ctx, `
		SELECT coldkey, hotkey, name, stake::TEXT FROM validators
		WHERE coldkey = $1 ORDER BY position LIMIT 1
	`, coldkey)
}

func (s *Store) ValidatorByHotkey(ctx context.Context, hotkey string) (enrichment.Validator, error) {
	return s.validator(ctx, `
		SELECT coldkey, hotkey, name, stake::TEXT FROM validators
		WHERE hotkey = $1 ORDER BY position LIMIT 1
	`, hotkey)
}

func (s *Store) validator(ctx context.Context, query, key string) (enrichment.Validator, error) {
	var (
		v     enrichment.Validator
		stake string
	)

	err := s.pool.QueryRow(ctx, query, key).Scan(&v.Coldkey, &v.Hotkey, &v.Name, &stake)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = enrichment.ErrNotFound
		}
		return enrichment.Validator{}, err
	}

	if v.Stake, err = decimal.NewFromString(stake); err != nil {
		return enrichment.Validator{}, fmt.Errorf("invalid stake %q for validator %s: %w", stake, key, err)
	}

	return v, nil
}

func (s *Store) SubnetOwnedBy(ctx context.Context, coldkey string) (uint16, error) {
	var netuid int32

	err := s.pool.QueryRow(ctx, `SELECT netuid FROM subnet_owners WHERE coldkey = $1`, coldkey).Scan(&netuid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = enrichment.ErrNotFound
		}
		return 0, err
	}

	return uint16(netuid), nil
}

// Reload truncates and refills both tables in one transaction, so readers
// keep seeing the previous generation until it commits.
func (s *Store) Reload(ctx context.Context, table enrichment.Table) error {
	validators, err := validatorRows(table.Validators)
	if err != nil {
		return err
	}
	owners := ownerRows(table.Owners)

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `TRUNCATE validators, subnet_owners`); err != nil {
			return err
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"validators"},
			[]string{"position", "coldkey", "hotkey", "name", "stake"},
			pgx.CopyFromRows(validators),
		); err != nil {
			return fmt.Errorf("copy validators: %w", err)
		}

		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"subnet_owners"},
			[]string{"coldkey", "netuid"},
			pgx.CopyFromRows(owners),
		); err != nil {
			return fmt.Errorf("copy subnet owners: %w", err)
		}

		return nil
	})
}

// validatorRows keeps the table order in the position column, which lookups
// use to return the first record of a key.
func validatorRows(validators []enrichment.Validator) ([][]any, error) {
	rows := make([][]any, 0, len(validators))
	for i, v := range validators {
		var stake pgtype.Numeric
		if err := stake.Scan(v.Stake.String()); err != nil {
			return nil, fmt.Errorf("invalid stake for validator %s: %w", v.Coldkey, err)
		}

		rows = append(rows, []any{int32(i), v.Coldkey, v.Hotkey, v.Name, stake})
	}
	return rows, nil
}

// ownerRows drops repeated coldkeys, keeping the first.
func ownerRows(owners []enrichment.SubnetOwner) [][]any {
	seen := make(map[string]struct{}, len(owners))
	rows := make([][]any, 0, len(owners))
	for _, o := range owners {
		if _, ok := seen[o.Coldkey]; ok {
			continue
		}
		seen[o.Coldkey] = struct{}{}
		rows = append(rows, []any{o.Coldkey, int32(o.Netuid)})
	}
	return rows
}
