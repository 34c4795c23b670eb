package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablero/internal/catalog"
	"tablero/internal/domain"
)

func openStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_LoadSeedWhenEmpty(t *testing.T) {
	store := openStore(t)

	config, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryConfig(), config)
}

func TestStore_SaveAndreload(t *testing.T) {
	store := openStore(t)

	saved := domain.CategoryConfig{
		"Rodados": {"R12", "R20"},
		"Varios":  {},
	}
	require.NoError(t, store.Save(saved))

	config, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, config)
}

func TestStore_FirstEditPersistsSeed(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.AddCategory("Repuestos"))

	config, err := store.Load()
	require.NoError(t, err)

	// Editing an unsaved store writes the seed down along with the edit.
	assert.Contains(t, config, "Rodados")
	assert.Contains(t, config, "Repuestos")
	assert.Empty(t, config["Repuestos"])
}

func TestStore_AddCategory_ExistingIsNoop(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.AddCategory("Rodados"))

	config, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryConfig()["Rodados"], config["Rodados"])
}

func TestStore_RemoveCategory(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.RemoveCategory("Varios"))

	config, err := store.Load()
	require.NoError(t, err)
	assert.NotContains(t, config, "Varios")
}

func TestStore_RemoveCategory_Unknown(t *testing.T) {
	store := openStore(t)

	err := store.RemoveCategory("Inexistente")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestStore_AddCode_NormalizesOnInsert(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.AddCode("Varios", "  patineta "))

	config, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "PATINETA", config["Varios"][len(config["Varios"])-1])
}

func TestStore_AddCode_UnknownCategory(t *testing.T) {
	store := openStore(t)

	err := store.AddCode("Inexistente", "R12")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestStore_RemoveCode(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.RemoveCode("Triciclos", 0))

	config, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"TRI REFORZADO"}, config["Triciclos"])
}

func TestStore_RemoveCode_IndexOutOfRange(t *testing.T) {
	store := openStore(t)

	assert.ErrorIs(t, store.RemoveCode("Triciclos", 5), domain.ErrCodeIndexOutOfRange)
	assert.ErrorIs(t, store.RemoveCode("Triciclos", -1), domain.ErrCodeIndexOutOfRange)
}
