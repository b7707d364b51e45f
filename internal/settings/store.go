package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/focusmode/focus"
)

// Store loads and saves settings.
type Store interface {
	Load(ctx context.Context) (focus.Settings, error)
	Save(ctx context.Context, s focus.Settings) error
}

// DefaultPath returns $XDG_CONFIG_HOME/focusmode/data.json, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: locate config dir: %w", err)
	}
	return filepath.Join(dir, "focusmode", "data.json"), nil
}

// FileStore keeps settings in a JSON file.
type FileStore struct {
	path     string
	log      logrus.FieldLogger
	debounce time.Duration

	mu          sync.Mutex
	lastWritten []byte
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDebounce sets how long Watch waits for writes to settle.
func WithDebounce(d time.Duration) Option {
	return func(s *FileStore) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

func NewFileStore(path string, opts ...Option) *FileStore {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &FileStore{
		path:     path,
		log:      discard,
		debounce: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithFields(logrus.Fields{"component": "settings", "path": path})
	return s
}

// Path returns the file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the file. A missing file yields the defaults and no error. A
// malformed file yields the defaults and an error wrapping ErrInvalidJSON.
func (s *FileStore) Load(ctx context.Context) (focus.Settings, error) {
	if err := ctx.Err(); err != nil {
		return focus.DefaultSettings(), err
	}
	if s.path == "" {
		return focus.DefaultSettings(), ErrNoPath
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug("no settings file, using defaults")
		return focus.DefaultSettings(), nil
	}
	if err != nil {
		return focus.DefaultSettings(), fmt.Errorf("settings: read %s: %w", s.path, err)
	}

	st, err := Decode(data)
	if err != nil {
		return st, fmt.Errorf("settings: decode %s: %w", s.path, err)
	}
	s.log.WithField("enabled", st.Enabled).Debug("settings loaded")
	return st, nil
}

// Save writes st, keeping unknown keys already in the file. The file is
// replaced atomically.
func (s *FileStore) Save(ctx context.Context, st focus.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.path == "" {
		return ErrNoPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("settings: read %s: %w", s.path, err)
	}
	data, err := Encode(base, st)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("settings: write %s: %w", s.path, err)
	}
	s.lastWritten = data
	s.log.WithField("enabled", st.Enabled).Debug("settings saved")
	return nil
}

// ownWrite reports whether data is what Save wrote last.
func (s *FileStore) ownWrite(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastWritten != nil && bytes.Equal(s.lastWritten, data)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// MemStore keeps settings in memory. It is safe for concurrent use.
type MemStore struct {
	mu    sync.Mutex
	s     focus.Settings
	saves int
}

func NewMemStore(s focus.Settings) *MemStore { return &MemStore{s: s} }

func (m *MemStore) Load(ctx context.Context) (focus.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, ctx.Err()
}

func (m *MemStore) Save(ctx context.Context, s focus.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
