// Package file implements the cart slot as a single JSON file on disk, the
// CLI analog of a browser localStorage entry.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/utafrali/cartsim/internal/domain"
)

// CartRepository implements repository.CartRepository on a JSON file.
type CartRepository struct {
	path   string
	logger *slog.Logger
}

// NewCartRepository creates a file-backed cart repository at the given path.
func NewCartRepository(path string, logger *slog.Logger) *CartRepository {
	return &CartRepository{path: path, logger: logger}
}

// Load reads the slot file. Missing or malformed content degrades to an
// empty cart; only filesystem failures other than "not exist" are errors.
func (r *CartRepository) Load(_ context.Context) (*domain.Cart, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.Cart{Lines: []domain.CartLine{}}, nil
		}
		return nil, fmt.Errorf("read cart slot: %w", err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn("cart slot is malformed, starting empty",
			slog.String("path", r.path),
			slog.String("error", err.Error()),
		)
		return &domain.Cart{Lines: []domain.CartLine{}}, nil
	}

	return &domain.Cart{Lines: lines}, nil
}

// Save writes the cart lines to the slot file, creating parent directories
// as needed.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create slot dir: %w", err)
		}
	}

	// Write to a temp file in the same directory and rename it over the
	// slot, so a crash mid-write never leaves a half-written slot behind.
	tmp, err := os.CreateTemp(dir, ".cart-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write cart slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close cart slot: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod cart slot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace cart slot: %w", err)
	}

	return nil
}
