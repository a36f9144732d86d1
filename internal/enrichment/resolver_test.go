package enrichment_test

import (
	"errors"
	"testing"

	"github.com/gabapcia/taowatch/internal/enrichment"
	enrichmentMocks "github.com/gabapcia/taowatch/internal/enrichment/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResolver_ResolveValidatorByColdkey(t *testing.T) {
	t.Run("returns the hotkey and name", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().ValidatorByColdkey(mock.Anything, "5COLD").
			Return(enrichment.Validator{Coldkey: "5COLD", Hotkey: "5HOT", Name: "Foundry"}, nil)

		match := enrichment.NewResolver(reader).ResolveValidatorByColdkey(t.Context(), "5COLD")

		assert.Equal(t, enrichment.ValidatorMatch{Name: "Foundry", Counterpart: "5HOT", Found: true}, match)
	})

	t.Run("unknown coldkey is not found", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().ValidatorByColdkey(mock.Anything, "5COLD").Return(enrichment.Validator{}, enrichment.ErrNotFound)

		match := enrichment.NewResolver(reader).ResolveValidatorByColdkey(t.Context(), "5COLD")

		assert.False(t, match.Found)
	})

	t.Run("store failures degrade to not found", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().ValidatorByColdkey(mock.Anything, "5COLD").Return(enrichment.Validator{}, errors.New("connection reset"))

		match := enrichment.NewResolver(reader).ResolveValidatorByColdkey(t.Context(), "5COLD")

		assert.Equal(t, enrichment.ValidatorMatch{}, match)
	})
}

func TestResolver_ResolveValidatorByHotkey(t *testing.T) {
	t.Run("returns the coldkey and name", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().ValidatorByHotkey(mock.Anything, "5HOT").
			Return(enrichment.Validator{Coldkey: "5COLD", Hotkey: "5HOT"}, nil)

		match := enrichment.NewResolver(reader).ResolveValidatorByHotkey(t.Context(), "5HOT")

		assert.Equal(t, enrichment.ValidatorMatch{Counterpart: "5COLD", Found: true}, match)
	})

	t.Run("store failures degrade to not found", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().ValidatorByHotkey(mock.Anything, "5HOT").Return(enrichment.Validator{}, errors.New("timeout"))

		assert.False(t, enrichment.NewResolver(reader).ResolveValidatorByHotkey(t.Context(), "5HOT").Found)
	})
}

func TestResolver_ResolveSubnetOwner(t *testing.T) {
	t.Run("returns the owned subnet", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().SubnetOwnedBy(mock.Anything, "5OWNER").Return(uint16(19), nil)

		netuid, ok := enrichment.NewResolver(reader).ResolveSubnetOwner(t.Context(), "5OWNER")

		assert.True(t, ok)
		assert.Equal(t, uint16(19), netuid)
	})

	t.Run("store failures degrade to not found", func(t *testing.T) {
		reader := enrichmentMocks.NewReader(t)
		reader.EXPECT().SubnetOwnedBy(mock.Anything, "5OWNER").Return(uint16(0), errors.New("timeout"))

		_, ok := enrichment.NewResolver(reader).ResolveSubnetOwner(t.Context(), "5OWNER")

		assert.False(t, ok)
	})
}
