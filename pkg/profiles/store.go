package profiles

import (
	"github.com/arthur-debert/confname/pkg/errors"
)

// Store is the in-memory ordered list of profiles. Order decides the
// order of the bound commands. Identifiers are not required to be unique.
type Store struct {
	profiles []Profile
}

// NewStore creates a store holding a copy of initial
func NewStore(initial []Profile) *Store {
	s := &Store{}
	s.SetAll(initial)
	return s
}

// List returns a snapshot that later mutations do not affect
func (s *Store) List() []Profile {
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Len returns the number of profiles
func (s *Store) Len() int {
	return len(s.profiles)
}

// SetAll replaces the whole list
func (s *Store) SetAll(profiles []Profile) {
	s.profiles = make([]Profile, len(profiles))
	copy(s.profiles, profiles)
}

// Get returns the profile at index
func (s *Store) Get(index int) (Profile, error) {
	if err := s.checkIndex(index, len(s.profiles)-1); err != nil {
		return Profile{}, err
	}
	return s.profiles[index], nil
}

// Find returns the index of the last profile with id, or -1
func (s *Store) Find(id string) int {
	for i := len(s.profiles) - 1; i >= 0; i-- {
		if s.profiles[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert puts p at index, shifting later profiles. index == Len() appends.
func (s *Store) Insert(p Profile, index int) error {
	if err := s.checkIndex(index, len(s.profiles)); err != nil {
		return err
	}

	s.profiles = append(s.profiles, Profile{})
	copy(s.profiles[index+1:], s.profiles[index:])
	s.profiles[index] = p

	log.Debug().Str("profile", p.ID).Int("index", index).Msg("Profile inserted")
	return nil
}

// RemoveAt deletes the profile at index
func (s *Store) RemoveAt(index int) error {
	if err := s.checkIndex(index, len(s.profiles)-1); err != nil {
		return err
	}

	removed := s.profiles[index]
	s.profiles = append(s.profiles[:index], s.profiles[index+1:]...)

	log.Debug().Str("profile", removed.ID).Int("index", index).Msg("Profile removed")
	return nil
}

// ReplaceAt overwrites the profile at index
func (s *Store) ReplaceAt(index int, p Profile) error {
	if err := s.checkIndex(index, len(s.profiles)-1); err != nil {
		return err
	}

	s.profiles[index] = p

	log.Debug().Str("profile", p.ID).Int("index", index).Msg("Profile replaced")
	return nil
}

func (s *Store) checkIndex(index, max int) error {
	if index < 0 || index > max {
		return errors.Newf(errors.ErrInvalidInput, "profile index %d out of range", index).
			WithDetail("index", index).
			WithDetail("len", len(s.profiles))
	}
	return nil
}
