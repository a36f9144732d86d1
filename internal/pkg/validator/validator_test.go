package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("should accept a valid struct", func(t *testing.T) {
		type input struct {
			Name string `validate:"required"`
		}

		assert.NoError(t, Validate(input{Name: "alpha"}))
	})

	t.Run("should report every failing field", func(t *testing.T) {
		type input struct {
			Name  string `validate:"required"`
			Limit int    `validate:"min=1"`
		}

		err := Validate(input{})

		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), `Name: "" fails required`)
		assert.Contains(t, err.Error(), `Limit: "0" fails min=1`)
	})

	t.Run("should name fields after their envconfig tag", func(t *testing.T) {
		type input struct {
			URL string `envconfig:"RPC_URL" json:"rpc" validate:"url"`
		}

		err := Validate(input{URL: "not a url"})

		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "RPC_URL:")
	})

	t.Run("should name fields after their json tag", func(t *testing.T) {
		type input struct {
			Account string `json:"old_coldkey,omitempty" validate:"required"`
		}

		err := Validate(input{})

		require.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "old_coldkey:")
	})

	t.Run("should validate nested structs", func(t *testing.T) {
		type inner struct {
			Value string `validate:"required"`
		}
		type outer struct {
			Inner inner `validate:"required"`
		}

		assert.NoError(t, Validate(outer{Inner: inner{Value: "x"}}))
		assert.ErrorIs(t, Validate(outer{}), ErrValidationFailed)
	})

	t.Run("should return non validation errors unchanged", func(t *testing.T) {
		err := Validate("not a struct")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrValidationFailed)
	})
}

func TestCronRule(t *testing.T) {
	type input struct {
		Schedule string `validate:"cron"`
	}

	t.Run("should accept descriptors and standard specs", func(t *testing.T) {
		for _, spec := range []string{"@every 1h", "@hourly", "*/15 * * * *"} {
			assert.NoError(t, Validate(input{Schedule: spec}), spec)
		}
	})

	t.Run("should reject malformed specs", func(t *testing.T) {
		for _, spec := range []string{"", "every hour", "* * *"} {
			assert.ErrorIs(t, Validate(input{Schedule: spec}), ErrValidationFailed, spec)
		}
	})
}
