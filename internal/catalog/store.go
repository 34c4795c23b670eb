// Package catalog persists the category→codes configuration that drives
// the production tally. It lives in a local SQLite file next to the
// service, not in the shared database: the config is a per-installation
// display preference, exactly like the per-browser storage it replaces,
// and is never validated against the codes that actually appear on
// remitos.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"tablero/internal/domain"
)

type categoryRow struct {
	Name  string `gorm:"primaryKey"`
	Codes string // JSON array, preserves code order
}

func (categoryRow) TableName() string { return "categories" }

// Store is the local category configuration store.
type Store struct {
	mu sync.Mutex
	db *gorm.DB
}

// Open creates or opens the catalog database inside dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "catalog.db")
	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}
	if err := gdb.AutoMigrate(&categoryRow{}); err != nil {
		return nil, fmt.Errorf("migrating catalog db: %w", err)
	}
	return &Store{db: gdb}, nil
}

// Load returns the persisted configuration, or the hardcoded seed when
// nothing has been saved yet.
func (s *Store) Load() (domain.CategoryConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (domain.CategoryConfig, error) {
	var rows []categoryRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	if len(rows) == 0 {
		return domain.DefaultCategoryConfig(), nil
	}

	config := make(domain.CategoryConfig, len(rows))
	for _, row := range rows {
		var codes []string
		if err := json.Unmarshal([]byte(row.Codes), &codes); err != nil {
			return nil, fmt.Errorf("decoding codes for %q: %w", row.Name, err)
		}
		config[row.Name] = codes
	}
	return config, nil
}

// Save replaces the whole persisted configuration.
func (s *Store) Save(config domain.CategoryConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(config)
}

func (s *Store) save(config domain.CategoryConfig) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&categoryRow{}).Error; err != nil {
			return fmt.Errorf("clearing categories: %w", err)
		}
		for name, codes := range config {
			if codes == nil {
				codes = []string{}
			}
			encoded, err := json.Marshal(codes)
			if err != nil {
				return fmt.Errorf("encoding codes for %q: %w", name, err)
			}
			if err := tx.Create(&categoryRow{Name: name, Codes: string(encoded)}).Error; err != nil {
				return fmt.Errorf("saving category %q: %w", name, err)
			}
		}
		return nil
	})
}

// AddCategory creates an empty category. Adding an existing name is a
// no-op.
func (s *Store) AddCategory(name string) error {
	return s.update(func(config domain.CategoryConfig) error {
		if _, ok := config[name]; !ok {
			config[name] = []string{}
		}
		return nil
	})
}

// RemoveCategory deletes a category and its codes.
func (s *Store) RemoveCategory(name string) error {
	return s.update(func(config domain.CategoryConfig) error {
		if _, ok := config[name]; !ok {
			return domain.ErrCategoryNotFound
		}
		delete(config, name)
		return nil
	})
}

// AddCode appends a code to a category. Codes are uppercased on insert;
// no check is made that the code exists on any remito.
func (s *Store) AddCode(category, code string) error {
	return s.update(func(config domain.CategoryConfig) error {
		codes, ok := config[category]
		if !ok {
			return domain.ErrCategoryNotFound
		}
		config[category] = append(codes, strings.ToUpper(strings.TrimSpace(code)))
		return nil
	})
}

// RemoveCode deletes the code at index from a category.
func (s *Store) RemoveCode(category string, index int) error {
	return s.update(func(config domain.CategoryConfig) error {
		codes, ok := config[category]
		if !ok {
			return domain.ErrCategoryNotFound
		}
		if index < 0 || index >= len(codes) {
			return domain.ErrCodeIndexOutOfRange
		}
		config[category] = append(codes[:index], codes[index+1:]...)
		return nil
	})
}

// update loads the config (seed included, so the first edit persists the
// defaults too), applies fn, and saves the result.
func (s *Store) update(fn func(domain.CategoryConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(config); err != nil {
		return err
	}
	return s.save(config)
}
