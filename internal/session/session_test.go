package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JobLane-client/internal/model"
)

func TestManager_HydrateMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, m.Hydrate())
	assert.Nil(t, m.User())
}

func TestManager_SetPersistsAcrossManagers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joblane", "session.json")

	u := model.User{ID: uuid.New(), Email: "seeker@joblane.dev", DisplayName: "Sam", Role: model.RoleJobSeeker}
	NewManager(path).Set(u)

	// a fresh manager stands in for a restarted process
	m := NewManager(path)
	require.NoError(t, m.Hydrate())

	got := m.User()
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Role, got.Role)
}

func TestManager_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := NewManager(path)
	m.Set(model.User{ID: uuid.New(), Role: model.RoleEmployer})

	m.Clear()

	assert.Nil(t, m.User())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestManager_HydrateDiscardsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	m := NewManager(path)
	require.NoError(t, m.Hydrate())
	assert.Nil(t, m.User())
}

func TestManager_UserReturnsCopy(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "session.json"))
	m.Set(model.User{ID: uuid.New(), DisplayName: "Sam"})

	got := m.User()
	got.DisplayName = "mutated"

	assert.Equal(t, "Sam", m.User().DisplayName)
}
