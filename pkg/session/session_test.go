package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	assert.Nil(t, store.Get(1))

	sess := store.Start(1)
	require.NotNil(t, sess)
	assert.Equal(t, StateTypeChoice, sess.State)
	require.NotNil(t, sess.Order)
	assert.NotEmpty(t, sess.Order.Ref)

	assert.Same(t, sess, store.Get(1))
	assert.Nil(t, store.Get(2))

	store.Delete(1)
	assert.Nil(t, store.Get(1))
}

func TestStartReplacesExistingSession(t *testing.T) {
	store := NewStore()

	first := store.Start(1)
	first.State = StateConfirm

	second := store.Start(1)
	assert.Equal(t, StateTypeChoice, second.State)
	assert.NotEqual(t, first.Order.Ref, second.Order.Ref)
	assert.Same(t, second, store.Get(1))
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore()
	store.Delete(7) // удалять несуществующую сессию безопасно
	assert.Nil(t, store.Get(7))
}
