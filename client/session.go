package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultSessionDir  = ".vico"
	defaultSessionFile = "session.yaml"
	envSessionPath     = "VICO_SESSION_PATH"
)

// ErrNoSession indica che nessun login e' stato fatto.
var ErrNoSession = errors.New("nessuna sessione salvata")

// Session e' lo stato client persistito tra un'invocazione e l'altra:
// token, ruolo e la preferenza della sidebar. Nessun versionamento.
type Session struct {
	Token            string `yaml:"token"`
	Role             string `yaml:"role"`
	SidebarCollapsed bool   `yaml:"sidebar_collapsed"`
}

// SessionStore legge e scrive la sessione su file YAML.
type SessionStore struct {
	path string
}

// NewSessionStore usa VICO_SESSION_PATH se impostata, altrimenti
// ~/.vico/session.yaml.
func NewSessionStore() (*SessionStore, error) {
	if p := os.Getenv(envSessionPath); p != "" {
		return &SessionStore{path: p}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return &SessionStore{path: filepath.Join(home, defaultSessionDir, defaultSessionFile)}, nil
}

// NewSessionStoreAt punta a un file esplicito (usato nei test).
func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Path() string {
	return s.path
}

func (s *SessionStore) Load() (Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(payload, &sess); err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Save(sess Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	payload, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear rimuove token e ruolo ma conserva le preferenze UI.
func (s *SessionStore) Clear() error {
	sess, err := s.Load()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil
		}
		return err
	}
	sess.Token = ""
	sess.Role = ""
	return s.Save(sess)
}
