// Package enrichment resolves chain accounts to known validators and subnet
// owners, and keeps the lookup tables fresh by rebuilding them from an external
// registry.
package enrichment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnavailable is reported when the lookup store cannot be reached.
	// Resolvers degrade it to "not found"; it only surfaces in logs.
	ErrUnavailable = errors.New("enrichment store unavailable")

	// ErrNotFound is returned by repositories when no record matches the key.
	ErrNotFound = errors.New("enrichment record not found")
)

// ValidatorMatch is the result of a validator lookup. Counterpart is the
// hotkey when the lookup was made by coldkey, and the coldkey when it was made
// by hotkey.
type ValidatorMatch struct {
	Name        string
	Counterpart string
	Found       bool
}

// Validator is a registered validator with its stake, in TAO.
type Validator struct {
	Coldkey string
	Hotkey  string
	Name    string
	Stake   decimal.Decimal
}

// SubnetOwner relates a coldkey to the subnet it owns.
type SubnetOwner struct {
	Coldkey string
	Netuid  uint16
}

// Table is one generation of the lookup relations. It is always written as a
// whole.
type Table struct {
	Validators []Validator
	Owners     []SubnetOwner
}

// Reader is the read side of the lookup store used while rendering reports.
type Reader interface {
	// ValidatorByColdkey returns the validator controlled by coldkey, or ErrNotFound.
	ValidatorByColdkey(ctx context.Context, coldkey string) (Validator, error)

	// ValidatorByHotkey returns the validator registered under hotkey, or ErrNotFound.
	ValidatorByHotkey(ctx context.Context, hotkey string) (Validator, error)

	// SubnetOwnedBy returns the subnet owned by coldkey, or ErrNotFound.
	SubnetOwnedBy(ctx context.Context, coldkey string) (uint16, error)
}

// Reloader is the write side of the lookup store. Reload must replace the
// previous generation atomically: concurrent readers see either the old or the
// new table, never a mix.
type Reloader interface {
	Reload(ctx context.Context, table Table) error
}

// Repository is a lookup store supporting both sides.
type Repository interface {
	Reader
	Reloader
}
