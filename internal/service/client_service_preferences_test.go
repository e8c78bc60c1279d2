package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/state"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestClientPreferencesService_Bind_LoadsAndPersists(t *testing.T) {
	storage := newMemStorage()
	appState := state.NewAppState()
	svc := NewClientPreferencesService(storage, appState, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, storage.SetItem(ctx, GridLayoutKey, "true"))

	require.NoError(t, svc.Bind(ctx))
	assert.True(t, appState.GridLayout.Get())

	appState.GridLayout.Set(false)

	value, ok, _ := storage.GetItem(ctx, GridLayoutKey)
	assert.True(t, ok)
	assert.Equal(t, "false", value)
}

func TestClientPreferencesService_Bind_DefaultsToList(t *testing.T) {
	storage := newMemStorage()
	appState := state.NewAppState()
	svc := NewClientPreferencesService(storage, appState, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, svc.Bind(ctx))
	assert.False(t, appState.GridLayout.Get())
	assert.False(t, storage.has(GridLayoutKey), "nothing persisted before the first change")

	appState.GridLayout.Update(func(grid bool) bool { return !grid })
	value, _, _ := storage.GetItem(ctx, GridLayoutKey)
	assert.Equal(t, "true", value)
}

func TestClientPreferencesService_ToggleTheme(t *testing.T) {
	appState := state.NewAppState()
	svc := NewClientPreferencesService(newMemStorage(), appState, logger.Nop())

	assert.Equal(t, models.ThemeDark, svc.ToggleTheme())
	assert.Equal(t, models.ThemeLight, svc.ToggleTheme())
	assert.Equal(t, models.ThemeLight, appState.Theme.Get())
}
