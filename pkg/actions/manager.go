// Package actions is the command host: a table of invocable commands and
// named, ordered groups that decide where each command is listed.
package actions

import (
	"context"

	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/registry"
)

var log = logging.GetLogger("actions")

// Well-known ids of the host's file creation menu
const (
	// NewGroupID is the group that lists file creation commands
	NewGroupID = "NewGroup"
	// NewFileID is the plain "create file" command profile commands follow
	NewFileID = "NewFile"
)

// Result reports what an invocation did
type Result struct {
	// Path of the created file, empty when nothing was created
	Path string
	// Cancelled is set when the user dismissed the name prompt
	Cancelled bool
}

// Handler runs a command against a target directory
type Handler func(ctx context.Context, directory string) (Result, error)

// Command is a registered, invocable entry
type Command struct {
	ID      string
	Label   string
	Handler Handler
}

// Manager registers commands and keeps group membership ordered. Groups
// are registries of command ids.
type Manager struct {
	commands registry.Registry[*Command]
	groups   map[string]registry.Registry[struct{}]
}

// NewManager creates an empty host with an empty NewGroup
func NewManager() *Manager {
	m := &Manager{
		commands: registry.New[*Command](),
		groups:   make(map[string]registry.Registry[struct{}]),
	}
	m.group(NewGroupID)
	return m
}

// RegisterCommand adds a command. Ids must be unique.
func (m *Manager) RegisterCommand(id, label string, handler Handler) error {
	if handler == nil {
		return errors.Newf(errors.ErrInvalidInput, "command '%s' has no handler", id)
	}
	if err := m.commands.Register(id, &Command{ID: id, Label: label, Handler: handler}); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRegister, "failed to register command '%s'", id)
	}
	log.Debug().Str("id", id).Str("label", label).Msg("Command registered")
	return nil
}

// RegisterNewFile registers the plain file creation command and lists it
// in NewGroup. Profile commands are anchored after it.
func (m *Manager) RegisterNewFile(handler Handler) error {
	if err := m.RegisterCommand(NewFileID, "File", handler); err != nil {
		return err
	}
	return m.AddToGroup(NewGroupID, NewFileID)
}

// UnregisterCommand removes a command from the table. Group membership is
// left to RemoveFromGroup.
func (m *Manager) UnregisterCommand(id string) error {
	if err := m.commands.Remove(id); err != nil {
		return errors.Wrapf(err, errors.ErrCommandRegister, "failed to unregister command '%s'", id)
	}
	log.Debug().Str("id", id).Msg("Command unregistered")
	return nil
}

// AddToGroup appends id to the end of a group
func (m *Manager) AddToGroup(groupID, id string) error {
	if err := m.group(groupID).Register(id, struct{}{}); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "command '%s' already in group '%s'", id, groupID)
	}
	return nil
}

// InsertAfter places id right after anchorID in a group. An anchor that is
// not in the group puts id at the end.
func (m *Manager) InsertAfter(groupID, id, anchorID string) error {
	if !m.commands.Has(id) {
		return errors.Newf(errors.ErrNotFound, "command '%s' is not registered", id)
	}

	placed, err := m.group(groupID).RegisterAfter(id, struct{}{}, anchorID)
	if err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "command '%s' already in group '%s'", id, groupID)
	}
	if !placed {
		log.Warn().Str("group", groupID).Str("anchor", anchorID).Msg("Anchor not in group, appending")
	}
	return nil
}

// RemoveFromGroup drops id from a group
func (m *Manager) RemoveFromGroup(groupID, id string) error {
	if err := m.group(groupID).Remove(id); err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "command '%s' not in group '%s'", id, groupID)
	}
	return nil
}

// Group returns the ordered members of a group
func (m *Manager) Group(groupID string) []string {
	return m.group(groupID).List()
}

// Command looks up a registered command
func (m *Manager) Command(id string) (*Command, error) {
	return m.commands.Get(id)
}

// Commands returns registered ids in registration order
func (m *Manager) Commands() []string {
	return m.commands.List()
}

// Invoke runs the handler of a registered command
func (m *Manager) Invoke(ctx context.Context, id, directory string) (Result, error) {
	cmd, err := m.commands.Get(id)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("id", id).Str("directory", directory).Msg("Invoking command")
	return cmd.Handler(ctx, directory)
}

func (m *Manager) group(groupID string) registry.Registry[struct{}] {
	g, ok := m.groups[groupID]
	if !ok {
		g = registry.New[struct{}]()
		m.groups[groupID] = g
	}
	return g
}
