package folio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// portfolioExt is the file extension used for persisted portfolios.
const portfolioExt = ".jsonl"

// FileStore persists portfolios as one JSONL file per portfolio inside a
// data directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the store's data directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+portfolioExt)
}

// Exists reports whether a portfolio called name has been saved.
func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Save writes p to disk, replacing any previous version. The file is written
// atomically through a rename.
func (s *FileStore) Save(p *Portfolio) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %q: %w", s.dir, err)
	}
	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		return fmt.Errorf("failed to encode portfolio %q: %w", p.Name(), err)
	}
	tmp := s.path(p.Name()) + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write portfolio %q: %w", p.Name(), err)
	}
	if err := os.Rename(tmp, s.path(p.Name())); err != nil {
		return fmt.Errorf("failed to write portfolio %q: %w", p.Name(), err)
	}
	return nil
}

// Load reads the portfolio called name from disk.
func (s *FileStore) Load(name string) (*Portfolio, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio %q: %w", name, err)
	}
	defer f.Close()
	return DecodePortfolio(f, name)
}

// LoadAll reads every saved portfolio into a repository.
func (s *FileStore) LoadAll() (*Repository, error) {
	repo := NewRepository()
	names, err := s.ListNames()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		p, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		if err := repo.Add(p); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// ListNames returns the names of all saved portfolios, sorted.
func (s *FileStore) ListNames() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %q: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), portfolioExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), portfolioExt))
	}
	return names, nil
}

// Delete removes the portfolio called name from disk.
func (s *FileStore) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("failed to delete portfolio %q: %w", name, err)
	}
	return nil
}
