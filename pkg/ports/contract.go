package ports

import (
	"testing"

	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCallbackStoreContract runs a suite of tests to verify that a CallbackStore
// implementation adheres to the defined interface contract.
// newStore must return an empty store on every call.
func RunCallbackStoreContract(t *testing.T, newStore func() CallbackStore) {
	noop := func(bool, string) {}

	t.Run("Handles Are Sequential", func(t *testing.T) {
		store := newStore()
		for want := range 3 {
			h, err := store.RegisterLabel("x", noop, false)
			require.NoError(t, err)
			assert.Equal(t, domain.Handle(want), h)
		}
	})

	t.Run("Multi Label Expression", func(t *testing.T) {
		store := newStore()
		h, err := store.RegisterLabel("[tag1], tag2", noop, true)
		require.NoError(t, err)

		assert.Equal(t, []domain.Handle{h}, store.Lookup("tag1"))
		assert.Equal(t, []domain.Handle{h}, store.Lookup("tag2"))

		rec := store.Get(h)
		assert.True(t, rec.Shared)
		assert.Equal(t, "[tag1], tag2", rec.Expr)
	})

	t.Run("Lookup Keeps Registration Order", func(t *testing.T) {
		store := newStore()
		h0, _ := store.RegisterLabel("a", noop, false)
		h1, _ := store.RegisterLabel("b, a", noop, false)
		h2, _ := store.RegisterLabel("[a]", noop, true)

		assert.Equal(t, []domain.Handle{h0, h1, h2}, store.Lookup("a"))
		assert.Equal(t, []domain.Handle{h1}, store.Lookup("b"))
	})

	t.Run("Unknown Label", func(t *testing.T) {
		store := newStore()
		assert.Empty(t, store.Lookup("missing"))
	})

	t.Run("Nil Callback", func(t *testing.T) {
		store := newStore()
		_, err := store.RegisterLabel("a", nil, false)
		assert.ErrorIs(t, err, domain.ErrNilCallback)
		assert.ErrorIs(t, store.RegisterRun(nil), domain.ErrNilCallback)
	})

	t.Run("Duplicate Run Callback", func(t *testing.T) {
		store := newStore()
		var calls []string
		require.NoError(t, store.RegisterRun(func(bool) { calls = append(calls, "first") }))

		err := store.RegisterRun(func(bool) { calls = append(calls, "second") })
		assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)

		store.Run()(true)
		assert.Equal(t, []string{"first"}, calls)
	})

	t.Run("Reset", func(t *testing.T) {
		store := newStore()
		_, _ = store.RegisterLabel("a", noop, false)
		require.NoError(t, store.RegisterRun(func(bool) {}))

		store.Reset()

		assert.Empty(t, store.Lookup("a"))
		assert.Nil(t, store.Run())

		h, err := store.RegisterLabel("a", noop, false)
		require.NoError(t, err)
		assert.Equal(t, domain.Handle(0), h)
	})
}
