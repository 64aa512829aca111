package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidal-session.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if s.Session() != (Session{}) {
		t.Errorf("expected empty session, got %+v", s.Session())
	}
	if _, err := s.Authorization(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestOpenExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidal-session.toml")
	content := `[session]
token_type = "Bearer"
access_token = "abc"
refresh_token = "def"
expiry_time = "2030-01-02 03:04:05.123456"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	sess := s.Session()
	if sess.AccessToken != "abc" || sess.RefreshToken != "def" {
		t.Errorf("unexpected session: %+v", sess)
	}

	auth, err := s.Authorization()
	if err != nil || auth != "Bearer abc" {
		t.Errorf("Authorization() = %q, %v", auth, err)
	}

	want := time.Date(2030, 1, 2, 3, 4, 5, 123456000, time.UTC)
	if !sess.Expiry().Equal(want) {
		t.Errorf("Expiry() = %v, want %v", sess.Expiry(), want)
	}
	if sess.Expired(time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("session should not be expired yet")
	}
	if !sess.Expired(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("session should be expired")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidal-session.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	sess := Session{TokenType: "Bearer", AccessToken: "new", ExpiryTime: "2030-01-01T00:00:00Z"}
	if err := s.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if s.Session() != sess {
		t.Errorf("current session not updated: %+v", s.Session())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("session file mode = %v", info.Mode().Perm())
	}

	other, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer other.Close()
	if other.Session() != sess {
		t.Errorf("reopened session = %+v, want %+v", other.Session(), sess)
	}
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidal-session.toml")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := os.WriteFile(path, []byte("[session]\ntoken_type = \"Bearer\"\naccess_token = \"fresh\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if s.Session().AccessToken != "fresh" {
		t.Errorf("expected reloaded token, got %+v", s.Session())
	}
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidal-session.toml")
	if err := os.WriteFile(path, []byte("[session\nbroken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpiryUnknown(t *testing.T) {
	sess := Session{ExpiryTime: "whenever"}
	if !sess.Expiry().IsZero() {
		t.Error("expected zero expiry")
	}
	if sess.Expired(time.Now()) {
		t.Error("unknown expiry should not count as expired")
	}
}
