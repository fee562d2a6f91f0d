package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateGrantsOnValidPin(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"A", "B"})
	gate := NewGate(store)

	require.Equal(t, AwaitingPIN, gate.State())

	got, err := gate.Submit(project.PIN)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, Granted, gate.State())

	require.NotNil(t, store.CurrentProject())
	assert.Equal(t, project.ID, store.CurrentProject().ID)
	require.NotNil(t, store.CurrentFolder())
	assert.Equal(t, project.Folders[0].ID, store.CurrentFolder().ID)
}

func TestGateRejectsUnknownPin(t *testing.T) {
	store := NewStore()
	store.CreateProject("P", "C", "2026-01-01", []string{"A"})
	gate := NewGate(store)

	got, err := gate.Submit("000000")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrPINNotRecognized)
	assert.Equal(t, AwaitingPIN, gate.State())
	assert.Nil(t, store.CurrentProject())
	assert.Nil(t, store.CurrentFolder())
}

func TestGateAllowsRetryAfterRejection(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{"A"})
	gate := NewGate(store)

	_, err := gate.Submit("999999x")
	require.Error(t, err)

	got, err := gate.Submit(project.PIN)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, Granted, gate.State())
}

func TestGateGrantWithNoFolders(t *testing.T) {
	store := NewStore()
	project := store.CreateProject("P", "C", "2026-01-01", []string{})
	gate := NewGate(store)

	got, err := gate.Submit(project.PIN)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Nil(t, store.CurrentFolder())
}
