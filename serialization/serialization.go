// SPDX-License-Identifier: MIT

package serialization

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/transport-catalogue/catalogue"
	"github.com/katalvlaran/transport-catalogue/render"
	"github.com/katalvlaran/transport-catalogue/transit"
)

// ErrMalformed indicates snapshot bytes that cannot be decoded into a
// consistent catalogue.
var ErrMalformed = errors.New("serialization: malformed snapshot")

// Snapshot is everything needed to answer requests without the original input.
type Snapshot struct {
	Catalogue *catalogue.Catalogue
	Settings  transit.Settings

	// Render is nil when no map settings were given.
	Render *render.Settings
}

// Save writes s to w.
func Save(w io.Writer, s Snapshot) error {
	if s.Catalogue == nil {
		return errors.New("serialization: snapshot has no catalogue")
	}
	data, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("serialization: write: %w", err)
	}

	return nil
}

// Load reads a snapshot written by Save.
func Load(r io.Reader) (Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("serialization: read: %w", err)
	}

	return decodeSnapshot(data)
}

// SaveFile writes s to path, replacing any existing file.
func SaveFile(path string, s Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("serialization: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("serialization: close %s: %w", path, cerr)
		}
	}()

	return Save(f, s)
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("serialization: %w", err)
	}
	defer f.Close()

	return Load(f)
}
