package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/cartsim/internal/domain"
)

func setupTestRepo(t *testing.T) (*CartRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCartRepository(path, logger), path
}

func sampleCart() *domain.Cart {
	return &domain.Cart{
		Lines: []domain.CartLine{
			{ProductID: 1, Name: "Bacha cerámica", UnitPrice: 45000, Quantity: 2},
			{ProductID: 5, Name: "Kit instalación", UnitPrice: 25000, Quantity: 1},
		},
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestCartRepository_Load_MissingFile(t *testing.T) {
	repo, _ := setupTestRepo(t)

	cart, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Lines)
}

func TestCartRepository_Load_MalformedFile(t *testing.T) {
	repo, path := setupTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cart, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestCartRepository_Load_RoundTrip(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart()))

	cart, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[0].ProductID)
	assert.Equal(t, float64(45000), cart.Lines[0].UnitPrice)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "Kit instalación", cart.Lines[1].Name)
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestCartRepository_Save_SlotFormat(t *testing.T) {
	repo, path := setupTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The slot holds a bare array of line records, no envelope.
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, float64(1), raw[0]["id"])
	assert.Equal(t, "Bacha cerámica", raw[0]["name"])
	assert.Equal(t, float64(45000), raw[0]["price"])
	assert.Equal(t, float64(2), raw[0]["quantity"])
}

func TestCartRepository_Save_NilLines(t *testing.T) {
	repo, path := setupTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), &domain.Cart{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCartRepository_Save_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state", "cart.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := NewCartRepository(path, logger)

	require.NoError(t, repo.Save(context.Background(), sampleCart()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestCartRepository_Save_Overwrites(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart()))
	require.NoError(t, repo.Save(ctx, &domain.Cart{Lines: []domain.CartLine{
		{ProductID: 3, Name: "Bidet estándar", UnitPrice: 70000, Quantity: 1},
	}}))

	cart, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].ProductID)
}

func TestCartRepository_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	repo := NewCartRepository(path, logger)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart()))
	require.NoError(t, repo.Save(ctx, sampleCart()))

	// The replace is temp-file + rename; only the slot itself may remain.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}

func TestCartRepository_Save_ReplacedSlotIsReadable(t *testing.T) {
	repo, path := setupTestRepo(t)
	ctx := context.Background()

	// Seed an existing slot, then overwrite it through the atomic path.
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
	require.NoError(t, repo.Save(ctx, sampleCart()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	cart, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}
