// Package settings ties the persisted profile list to the bound commands.
//
// A Session is the lifetime of a workspace: Open loads the profiles and
// binds a command for each, every edit is saved and reconciled, and Close
// unbinds everything again.
package settings

import (
	"github.com/arthur-debert/confname/pkg/binder"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/profiles"
)

var log = logging.GetLogger("settings")

// Session owns the profile store and keeps the binder in step with it
type Session struct {
	store     *profiles.Store
	persister profiles.Persister
	binder    *binder.Binder
	open      bool
}

// NewSession creates a closed session. Nothing is loaded or bound until
// Open is called.
func NewSession(persister profiles.Persister, b *binder.Binder) *Session {
	return &Session{
		store:     profiles.NewStore(nil),
		persister: persister,
		binder:    b,
	}
}

// Open loads the persisted profiles and binds a command for each
func (s *Session) Open() error {
	if s.open {
		return errors.New(errors.ErrInvalidInput, "session already open")
	}

	list, err := s.load()
	if err != nil {
		return err
	}

	s.store.SetAll(list)
	s.open = true
	warnDuplicates(list)

	log.Info().Int("profiles", len(list)).Msg("Session opened")
	return s.binder.Reconcile(nil, list)
}

// Close unbinds every command. The profile list stays in memory.
func (s *Session) Close() error {
	if !s.open {
		return nil
	}
	s.open = false

	log.Info().Msg("Session closed")
	return s.binder.UnbindAll()
}

// IsOpen reports whether Open succeeded and Close has not been called
func (s *Session) IsOpen() bool {
	return s.open
}

// Profiles returns a snapshot of the current profile list
func (s *Session) Profiles() []profiles.Profile {
	return s.store.List()
}

// Find returns the index of the profile with id, or -1
func (s *Session) Find(id string) int {
	return s.store.Find(id)
}

// Binder exposes the binder that owns the session's commands
func (s *Session) Binder() *binder.Binder {
	return s.binder
}

// SetConfiguration replaces the whole profile list
func (s *Session) SetConfiguration(list []profiles.Profile) error {
	normalized := normalizeAll(list)
	return s.apply(func(store *profiles.Store) error {
		store.SetAll(normalized)
		return nil
	})
}

// Insert adds p at index. index == len appends.
func (s *Session) Insert(p profiles.Profile, index int) error {
	p = p.Normalize()
	return s.apply(func(store *profiles.Store) error {
		return store.Insert(p, index)
	})
}

// Append adds p after the last profile
func (s *Session) Append(p profiles.Profile) error {
	return s.Insert(p, s.store.Len())
}

// RemoveAt deletes the profile at index
func (s *Session) RemoveAt(index int) error {
	return s.apply(func(store *profiles.Store) error {
		return store.RemoveAt(index)
	})
}

// ReplaceAt overwrites the profile at index
func (s *Session) ReplaceAt(index int, p profiles.Profile) error {
	p = p.Normalize()
	return s.apply(func(store *profiles.Store) error {
		return store.ReplaceAt(index, p)
	})
}

// Reload reads the persisted list again and reconciles against it without
// saving. It is used when the profiles file changes underneath the session.
func (s *Session) Reload() error {
	list, err := s.load()
	if err != nil {
		return err
	}

	old := s.store.List()
	s.store.SetAll(list)
	warnDuplicates(list)

	log.Info().Int("profiles", len(list)).Msg("Profiles reloaded")
	if !s.open {
		return nil
	}
	return s.binder.Reconcile(old, list)
}

// apply mutates the store, saves and reconciles. A failed mutation or save
// leaves the store and the bound commands as they were.
func (s *Session) apply(mutate func(*profiles.Store) error) error {
	old := s.store.List()

	if err := mutate(s.store); err != nil {
		return err
	}

	current := s.store.List()
	if err := s.persister.Save(current); err != nil {
		s.store.SetAll(old)
		return err
	}
	warnDuplicates(current)

	if !s.open {
		return nil
	}
	return s.binder.Reconcile(old, current)
}

func (s *Session) load() ([]profiles.Profile, error) {
	list, err := s.persister.Load()
	if err != nil {
		return nil, err
	}
	return normalizeAll(list), nil
}

func normalizeAll(list []profiles.Profile) []profiles.Profile {
	out := make([]profiles.Profile, len(list))
	for i, p := range list {
		out[i] = p.Normalize()
	}
	return out
}

func warnDuplicates(list []profiles.Profile) {
	for _, id := range profiles.Duplicates(list) {
		log.Warn().Str("profile", id).Msg("Profile id used more than once, the last one is bound")
	}
}
