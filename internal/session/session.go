// Package session keeps the foreign catalog credentials in a TOML file
// shared with the catalog helper process.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/cesargomez89/tidarr/internal/constants"
)

// ErrNoSession is returned when the store holds no access token.
var ErrNoSession = errors.New("no catalog session")

// Session is the [session] table of the session file.
type Session struct {
	TokenType    string `toml:"token_type"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token,omitempty"`
	ExpiryTime   string `toml:"expiry_time,omitempty"`
}

type document struct {
	Session Session `toml:"session"`
}

var expiryLayouts = []string{
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// Expiry parses ExpiryTime. The zero time means unknown.
func (s Session) Expiry() time.Time {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s.ExpiryTime); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Expired reports whether the token is known to be expired at now.
func (s Session) Expired(now time.Time) bool {
	exp := s.Expiry()
	return !exp.IsZero() && now.After(exp)
}

// Store is an open session file. The helper process may rewrite the file
// at any time, so every access takes the sidecar lock.
type Store struct {
	path string
	lock *flock.Flock

	mu      sync.RWMutex
	current Session
}

// Open loads the session file at path. A missing file yields an empty
// session rather than an error.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
	if err := s.Reload(); err != nil {
		_ = s.lock.Close()
		return nil, err
	}
	return s, nil
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the session file.
func (s *Store) Reload() error {
	if err := s.lock.RLock(); err != nil {
		return fmt.Errorf("lock session file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.set(Session{})
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	var doc document
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return fmt.Errorf("parse session file: %w", err)
	}
	s.set(doc.Session)
	return nil
}

// Session returns the loaded session.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save writes sess to the file atomically and makes it current.
func (s *Store) Save(sess Session) error {
	data, err := toml.Marshal(document{Session: sess})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session file: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(constants.FilePermissions); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	s.set(sess)
	return nil
}

// Authorization returns the Authorization header value for catalog calls.
func (s *Store) Authorization() (string, error) {
	sess := s.Session()
	if sess.AccessToken == "" {
		return "", ErrNoSession
	}
	tokenType := sess.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + sess.AccessToken, nil
}

// Close releases the lock file handle.
func (s *Store) Close() error {
	return s.lock.Close()
}

func (s *Store) set(sess Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}
