package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const filePerm = 0o644

// FileStore keeps the catalog in memory and mirrors it to a JSON file after
// every successful mutation. The file is never re-read after Open, so two
// processes sharing one file do not see each other's writes.
type FileStore struct {
	mu       sync.RWMutex
	path     string
	products []Product
	log      *zap.Logger
	loadErr  error
}

var (
	_ Store   = (*FileStore)(nil)
	_ Mutator = (*FileStore)(nil)
)

// Open loads the catalog at path. It never fails: a missing, unreadable or
// malformed file yields an empty catalog and a warning on log.
func Open(path string, log *zap.Logger) *FileStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &FileStore{
		path:     path,
		products: []Product{},
		log:      log.With(zap.String("file", path)),
	}

	products, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Info("catalog file not found, starting empty")
	case err != nil:
		s.loadErr = err
		s.log.Warn("error loading products, starting empty", zap.Error(err))
	default:
		s.products = products
		s.log.Info("catalog loaded", zap.Int("products", len(products)))
	}
	return s
}

func readFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (s *FileStore) Path() string { return s.path }

// LoadErr reports why an existing catalog file could not be loaded at Open.
// It is nil when the file was loaded or did not exist.
func (s *FileStore) LoadErr() error { return s.loadErr }

// Ping checks that the directory holding the catalog file is reachable.
func (s *FileStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrIO, dir)
	}
	return nil
}

// List returns a copy of all products in insertion order.
func (s *FileStore) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *FileStore) GetByID(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// Add validates in, assigns the next id and persists the catalog.
func (s *FileStore) Add(in Input) (Product, error) {
	if err := validateStruct(in); err != nil {
		return Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.codeTaken(in.Code, -1) {
		return Product{}, fmt.Errorf("%w: %q", ErrDuplicateCode, in.Code)
	}

	p := in.product(s.nextID())
	s.products = append(s.products, p)

	if err := s.persist(); err != nil {
		return Product{}, err
	}
	s.log.Debug("product added", zap.Int("id", p.ID), zap.String("code", p.Code))
	return p, nil
}

// Update overlays patch onto the product with the given id. A code change
// must not collide with another product's code.
func (s *FileStore) Update(id int, patch Patch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Product{}, ErrNotFound
	}

	if err := validateStruct(patch); err != nil {
		return Product{}, err
	}

	current := s.products[i]
	if patch.Code != nil && *patch.Code != current.Code && s.codeTaken(*patch.Code, i) {
		return Product{}, fmt.Errorf("%w: %q", ErrDuplicateCode, *patch.Code)
	}

	updated := patch.apply(current)
	s.products[i] = updated

	if err := s.persist(); err != nil {
		return Product{}, err
	}
	s.log.Debug("product updated", zap.Int("id", id))
	return updated, nil
}

func (s *FileStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	s.products = append(s.products[:i], s.products[i+1:]...)

	if err := s.persist(); err != nil {
		return err
	}
	s.log.Debug("product deleted", zap.Int("id", id))
	return nil
}

// persist rewrites the whole file. On failure memory stays ahead of disk
// until the next successful write. Callers hold s.mu.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.products, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrIO, err)
	}
	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		s.log.Error("persist catalog failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func (s *FileStore) indexOf(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// codeTaken reports whether code belongs to any product other than skip.
func (s *FileStore) codeTaken(code string, skip int) bool {
	for i := range s.products {
		if i != skip && s.products[i].Code == code {
			return true
		}
	}
	return false
}

// nextID is one past the highest id currently present. Deleting the highest
// product therefore frees its id for reuse.
func (s *FileStore) nextID() int {
	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}
