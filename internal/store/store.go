package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/jobs"
)

// DataFileName is the default name of the cached dataset.
const DataFileName = "career_job_postings.csv"

// Store is the flat-file cache holding the generated job postings.
type Store struct {
	path   string
	logger *zap.Logger
}

// Open returns a Store for the dataset file at path. The file itself is not
// touched until Load or Save. A nil logger disables logging.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("open store: empty path")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger.With(zap.String("path", path))}, nil
}

// Path returns the dataset file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the dataset file is present.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat dataset: %w", err)
}

// Load reads the cached postings.
func (s *Store) Load() ([]jobs.Posting, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	postings, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	s.logger.Debug("dataset loaded", zap.Int("count", len(postings)))
	return postings, nil
}

// Save writes postings to the dataset file, replacing any previous content.
// The table is written to a temporary file first and renamed into place.
func (s *Store) Save(postings []jobs.Posting) error {
	if err := ensureDir(s.path); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, postings); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace dataset: %w", err)
	}
	s.logger.Info("dataset saved", zap.Int("count", len(postings)))
	return nil
}

// Remove deletes the dataset file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove dataset: %w", err)
	}
	return nil
}

// Generator produces a fresh table of postings.
type Generator interface {
	Generate(n int) []jobs.Posting
}

// LoadOrGenerate returns the cached table, generating and writing n postings
// first when no cache exists. An existing cache is never regenerated.
func (s *Store) LoadOrGenerate(n int, gen Generator) ([]jobs.Posting, error) {
	ok, err := s.Exists()
	if err != nil {
		return nil, err
	}
	if ok {
		return s.Load()
	}

	s.logger.Info("no cached dataset, generating", zap.Int("count", n))
	postings := gen.Generate(n)
	if err := s.Save(postings); err != nil {
		return nil, err
	}
	return postings, nil
}

// DefaultDataPath resolves the dataset file path in priority order:
// 1. CAREERLAB_DATA environment variable
// 2. $XDG_DATA_HOME/careerlab/career_job_postings.csv
// 3. ~/.local/share/careerlab/career_job_postings.csv
func DefaultDataPath() (string, error) {
	if p := os.Getenv("CAREERLAB_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "careerlab", DataFileName), nil
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
