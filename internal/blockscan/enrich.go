package blockscan

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/taowatch/internal/enrichment"
)

// Enricher resolves keys found in reports to known validators and subnet
// owners. Implementations must never fail: an unreachable store is reported as
// "not found".
type Enricher interface {
	ResolveValidatorByColdkey(ctx context.Context, coldkey string) enrichment.ValidatorMatch
	ResolveValidatorByHotkey(ctx context.Context, hotkey string) enrichment.ValidatorMatch
	ResolveSubnetOwner(ctx context.Context, coldkey string) (uint16, bool)
}

type nopEnricher struct{}

func (nopEnricher) ResolveValidatorByColdkey(context.Context, string) enrichment.ValidatorMatch {
	return enrichment.ValidatorMatch{}
}

func (nopEnricher) ResolveValidatorByHotkey(context.Context, string) enrichment.ValidatorMatch {
	return enrichment.ValidatorMatch{}
}

func (nopEnricher) ResolveSubnetOwner(context.Context, string) (uint16, bool) {
	return 0, false
}

// LinkTemplates are the URL patterns used in annotations. Validator receives
// the validator hotkey, Subnet the subnet id.
type LinkTemplates struct {
	Validator string
	Subnet    string
}

// DefaultLinkTemplates points annotations at taostats.io.
func DefaultLinkTemplates() LinkTemplates {
	return LinkTemplates{
		Validator: "https://taostats.io/validator/%s",
		Subnet:    "https://taostats.io/subnets/%d",
	}
}

const unnamedValidator = "no name"

type keyRole uint8

const (
	roleNone keyRole = iota
	roleColdkey
	roleHotkey
)

// annotatedKeys lists the report fields whose value is a chain account,
// including the account attributes runtimes attach to a dissolved network.
var annotatedKeys = map[string]keyRole{
	"old_coldkey":   roleColdkey,
	"new_coldkey":   roleColdkey,
	"owner_coldkey": roleColdkey,
	"account":       roleColdkey,
	"owner":         roleColdkey,
	"coldkey":       roleColdkey,
	"hotkey":        roleHotkey,
}

// annotation returns the single line appended to the value of a key field,
// or false when nothing is known about the account.
func annotation(ctx context.Context, enricher Enricher, links LinkTemplates, key, value string) (string, bool) {
	role := annotatedKeys[key]
	if role == roleNone || value == "" {
		return "", false
	}

	var (
		parts     []string
		validator enrichment.ValidatorMatch
		hotkey    string
	)

	switch role {
	case roleColdkey:
		validator = enricher.ResolveValidatorByColdkey(ctx, value)
		hotkey = validator.Counterpart
	case roleHotkey:
		validator = enricher.ResolveValidatorByHotkey(ctx, value)
		hotkey = value
	}

	if validator.Found {
		name := validator.Name
		if name == "" {
			name = unnamedValidator
		}
		if hotkey == "" {
			parts = append(parts, "Validator: "+name)
		} else {
			parts = append(parts, fmt.Sprintf("Validator: %s (%s)", name, fmt.Sprintf(links.Validator, hotkey)))
		}
	}

	if role == roleColdkey {
		if netuid, ok := enricher.ResolveSubnetOwner(ctx, value); ok {
			parts = append(parts, fmt.Sprintf("Subnet owner: SN%d (%s)", netuid, fmt.Sprintf(links.Subnet, netuid)))
		}
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " | "), true
}
