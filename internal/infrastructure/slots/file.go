// Package slots contiene backends de repository.SlotStorage que no requieren servicios externos.
package slots

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/jhoicas/supermercado-dashboard/internal/domain/repository"
)

var _ repository.SlotStorage = (*FileStorage)(nil)

// FileStorage guarda cada slot como <dir>/<clave>.json sobre un afero.Fs.
// La escritura va a un archivo temporal y luego se renombra.
type FileStorage struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFileStorage crea el directorio si no existe. Usar afero.NewOsFs() en producción
// y afero.NewMemMapFs() en tests.
func NewFileStorage(fsys afero.Fs, dir string) (*FileStorage, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStorage{fs: fsys, dir: dir}, nil
}

// Get lee el slot; found=false si el archivo no existe.
func (s *FileStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("leer %s: %w", key, err)
	}
	return data, true, nil
}

// Set reemplaza el contenido del slot.
func (s *FileStorage) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	final := s.path(key)
	tmp := final + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, final); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("renombrar %s: %w", key, err)
	}
	return nil
}

// path traduce la clave a un nombre de archivo seguro ("super:products" -> "super_products.json").
func (s *FileStorage) path(key string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '.':
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, name+".json")
}
