// Package session resolves the identity and operating mode that every API
// call carries. A Session is built once per run and injected into the API
// client; nothing here is global.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"studywise-client/internal/pkg/logger"
	"studywise-client/internal/storage"
)

const (
	KeyUserEmail = "userEmail"
	KeyAIMode    = "aiMode"
	KeyTheme     = "theme"

	PlaceholderEmail = "demo@studywise.com"
	EmailQuestion    = "Enter your email:"
)

type Session struct {
	store storage.Storage
	log   logger.ILogger

	mu    sync.RWMutex
	email string
}

// Open resolves the session identity: stored value first, then the prompt,
// then PlaceholderEmail. Whatever is resolved is written back to storage.
func Open(ctx context.Context, store storage.Storage, prompter Prompter, log logger.ILogger) (*Session, error) {
	s := &Session{store: store, log: log}

	stored, found, err := store.Get(ctx, KeyUserEmail)
	if err != nil {
		return nil, fmt.Errorf("read session identity: %w", err)
	}
	if email := strings.TrimSpace(stored); found && email != "" {
		s.email = email
		return s, nil
	}

	email := PlaceholderEmail
	if prompter != nil {
		answer, ok, err := prompter.Prompt(ctx, EmailQuestion)
		if err != nil {
			log.Warn("session", "email prompt failed, using placeholder", map[string]interface{}{"error": err.Error()})
		} else if answer = strings.TrimSpace(answer); ok && answer != "" {
			email = answer
		}
	}
	s.email = email

	if err := store.Set(ctx, KeyUserEmail, email); err != nil {
		log.Warn("session", "could not persist session identity", map[string]interface{}{"error": err.Error()})
	}
	log.Info("session", "session identity resolved", map[string]interface{}{"email": email})

	return s, nil
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// SetEmail replaces the identity. This is the explicit user action; nothing
// else changes the email during a run.
func (s *Session) SetEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}
	if err := s.store.Set(ctx, KeyUserEmail, email); err != nil {
		return fmt.Errorf("persist session identity: %w", err)
	}
	s.mu.Lock()
	s.email = email
	s.mu.Unlock()
	return nil
}

// Mode returns the persisted operating mode, DefaultMode when unset or unreadable.
func (s *Session) Mode(ctx context.Context) Mode {
	v, found, err := s.store.Get(ctx, KeyAIMode)
	if err != nil {
		s.log.Warn("session", "could not read ai mode", map[string]interface{}{"error": err.Error()})
		return DefaultMode
	}
	if !found || v == "" {
		return DefaultMode
	}
	m := Mode(v)
	if !m.Valid() {
		s.log.Warn("session", "unknown ai mode in storage", map[string]interface{}{"value": v})
		return DefaultMode
	}
	return m
}

func (s *Session) SetMode(ctx context.Context, m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("invalid mode %q", m)
	}
	if err := s.store.Set(ctx, KeyAIMode, string(m)); err != nil {
		return fmt.Errorf("persist ai mode: %w", err)
	}
	return nil
}

func (s *Session) Theme(ctx context.Context) string {
	v, found, err := s.store.Get(ctx, KeyTheme)
	if err != nil || !found || v == "" {
		return "light"
	}
	return v
}

func (s *Session) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme %q", theme)
	}
	return s.store.Set(ctx, KeyTheme, theme)
}
