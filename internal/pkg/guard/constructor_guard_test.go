package guard_test

import (
	"errors"
	"testing"

	"commerce/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("object not constructed")

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil_given", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_embedded_in_struct_behaves_like_field", func(t *testing.T) {
		type command struct {
			guard guard.ConstructorGuard
		}

		blank := command{}
		built := command{guard: guard.NewConstructorGuard()}

		require.Error(t, blank.guard.Validate(notConstructed))
		require.NoError(t, built.guard.Validate(notConstructed))
	})

	t.Run("guard_can_be_safely_copied_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, g.Validate(notConstructed))
		require.NoError(t, copied.Validate(notConstructed))
	})
}
