// Package binder keeps one host command per profile.
//
// Reconcile brings the host's registered commands in line with a new
// profile list: commands of vanished profiles are unregistered, new ones
// are registered, and all of them are anchored in list order right after
// the host's plain "new file" command. A command is never patched; when
// a profile changes its command is replaced.
package binder

import (
	"context"
	stderrors "errors"
	"sort"
	"time"

	"github.com/arthur-debert/confname/pkg/actions"
	"github.com/arthur-debert/confname/pkg/errors"
	"github.com/arthur-debert/confname/pkg/logging"
	"github.com/arthur-debert/confname/pkg/profiles"
)

var log = logging.GetLogger("binder")

// Defaults for Options
const (
	DefaultNamespace   = "ConfigurableFileName"
	DefaultStandInName = "test"
)

// Host is the command registry commands are bound into
type Host interface {
	RegisterCommand(id, label string, handler actions.Handler) error
	UnregisterCommand(id string) error
	InsertAfter(groupID, id, anchorID string) error
	RemoveFromGroup(groupID, id string) error
}

// Creator materializes a resolved file name inside a directory
type Creator interface {
	CreateFile(directory, name, defaultExt string) (string, error)
}

// Prompter asks the user for a base name. ok is false when the user
// dismissed the prompt.
type Prompter interface {
	PromptForBaseName(title string) (name string, ok bool, err error)
}

// Options tune ids and invocation behavior
type Options struct {
	// Namespace prefixes command ids: "<Namespace>.<profile id>"
	Namespace string
	// GroupID is the host group commands are listed in
	GroupID string
	// AnchorID is the command the first profile command follows
	AnchorID string
	// NonInteractive replaces the prompt with StandInName
	NonInteractive bool
	// StandInName is the base name used when NonInteractive is set
	StandInName string
	// User overrides the operating-system user for ${USER}
	User string
	// Now supplies invocation timestamps
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.GroupID == "" {
		o.GroupID = actions.NewGroupID
	}
	if o.AnchorID == "" {
		o.AnchorID = actions.NewFileID
	}
	if o.StandInName == "" {
		o.StandInName = DefaultStandInName
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Binder owns the profile commands registered in a Host
type Binder struct {
	host     Host
	creator  Creator
	prompter Prompter
	opts     Options

	bound map[string]*BoundCommand
	order []string
}

// New creates a binder with nothing bound
func New(host Host, creator Creator, prompter Prompter, opts Options) *Binder {
	return &Binder{
		host:     host,
		creator:  creator,
		prompter: prompter,
		opts:     opts.withDefaults(),
		bound:    make(map[string]*BoundCommand),
	}
}

// CommandID is the host id of the command bound to a profile id
func (b *Binder) CommandID(profileID string) string {
	return b.opts.Namespace + "." + profileID
}

// Reconcile moves the bound commands from matching old to matching
// newProfiles. When an id appears more than once in newProfiles, the last
// occurrence is bound at its position and earlier ones are skipped.
func (b *Binder) Reconcile(old, newProfiles []profiles.Profile) error {
	done := logging.LogOperationStart(log, "reconcile")
	defer done()

	wanted := collapse(newProfiles)
	keep := make(map[string]bool, len(wanted))
	for _, p := range wanted {
		keep[p.ID] = true
	}

	var errs []error

	for _, p := range old {
		if keep[p.ID] {
			continue
		}
		if _, ok := b.bound[p.ID]; !ok {
			continue
		}
		if err := b.unbind(p.ID); err != nil {
			errs = append(errs, err)
		}
	}
	for _, id := range b.boundIDs() {
		if !keep[id] {
			log.Warn().Str("profile", id).Msg("Unbinding command missing from the previous profile list")
			if err := b.unbind(id); err != nil {
				errs = append(errs, err)
			}
		}
	}

	anchor := b.opts.AnchorID
	order := make([]string, 0, len(wanted))
	for _, p := range wanted {
		current, exists := b.bound[p.ID]

		var err error
		switch {
		case !exists:
			err = b.bind(p, anchor)
		case current.Profile != p:
			log.Debug().Str("profile", p.ID).Msg("Profile changed, replacing its command")
			if err = b.unbind(p.ID); err == nil {
				err = b.bind(p, anchor)
			}
		default:
			err = b.reanchor(current.ID, anchor)
		}
		if err != nil {
			errs = append(errs, err)
			// a command that failed to move is still registered
			if _, still := b.bound[p.ID]; still {
				order = append(order, p.ID)
			}
			continue
		}

		order = append(order, p.ID)
		anchor = b.CommandID(p.ID)
	}
	b.order = order

	log.Info().Int("bound", len(b.order)).Int("errors", len(errs)).Msg("Commands reconciled")

	if len(errs) > 0 {
		return errors.Wrap(stderrors.Join(errs...), errors.ErrCommandRegister, "failed to reconcile commands")
	}
	return nil
}

// UnbindAll unregisters every bound command
func (b *Binder) UnbindAll() error {
	ids := b.boundIDs()
	current := make([]profiles.Profile, 0, len(ids))
	for _, id := range ids {
		current = append(current, b.bound[id].Profile)
	}
	return b.Reconcile(current, nil)
}

// boundIDs lists every profile with a live command: group order first,
// then any binding the order lost track of, sorted
func (b *Binder) boundIDs() []string {
	ids := b.Profiles()
	listed := make(map[string]bool, len(ids))
	for _, id := range ids {
		listed[id] = true
	}

	var extra []string
	for id := range b.bound {
		if !listed[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// Bound returns the live commands in group order
func (b *Binder) Bound() []*BoundCommand {
	out := make([]*BoundCommand, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.bound[id])
	}
	return out
}

// Profiles returns the ids of every bound profile, in group order
func (b *Binder) Profiles() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Lookup returns the command bound to a profile id
func (b *Binder) Lookup(profileID string) (*BoundCommand, bool) {
	cmd, ok := b.bound[profileID]
	return cmd, ok
}

func (b *Binder) bind(p profiles.Profile, anchor string) error {
	cmd := &BoundCommand{
		ID:      b.CommandID(p.ID),
		Label:   p.ID + " file",
		Profile: p,
		binder:  b,
	}

	if err := b.host.RegisterCommand(cmd.ID, cmd.Label, cmd.Invoke); err != nil {
		return err
	}
	if err := b.host.InsertAfter(b.opts.GroupID, cmd.ID, anchor); err != nil {
		_ = b.host.UnregisterCommand(cmd.ID)
		return err
	}

	b.bound[p.ID] = cmd
	log.Debug().Str("id", cmd.ID).Str("anchor", anchor).Msg("Command bound")
	return nil
}

func (b *Binder) unbind(profileID string) error {
	cmd := b.bound[profileID]
	delete(b.bound, profileID)
	for i, id := range b.order {
		if id == profileID {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
	cmd.stale = true

	var errs []error
	if err := b.host.UnregisterCommand(cmd.ID); err != nil {
		errs = append(errs, err)
	}
	if err := b.host.RemoveFromGroup(b.opts.GroupID, cmd.ID); err != nil && !errors.IsErrorCode(err, errors.ErrNotFound) {
		errs = append(errs, err)
	}

	log.Debug().Str("id", cmd.ID).Msg("Command unbound")
	return stderrors.Join(errs...)
}

// reanchor moves a bound command after anchor. A command missing from the
// group, after an earlier failed move, is simply placed again.
func (b *Binder) reanchor(id, anchor string) error {
	if err := b.host.RemoveFromGroup(b.opts.GroupID, id); err != nil && !errors.IsErrorCode(err, errors.ErrNotFound) {
		return err
	}
	return b.host.InsertAfter(b.opts.GroupID, id, anchor)
}

// collapse keeps the last occurrence of every id, in list order
func collapse(list []profiles.Profile) []profiles.Profile {
	last := make(map[string]int, len(list))
	for i, p := range list {
		last[p.ID] = i
	}

	out := make([]profiles.Profile, 0, len(last))
	for i, p := range list {
		if last[p.ID] != i {
			log.Debug().Str("profile", p.ID).Int("index", i).Msg("Skipping duplicate profile, a later one wins")
			continue
		}
		out = append(out, p)
	}
	return out
}

// Invoke is a convenience for callers that hold the binder rather than
// the host
func (b *Binder) Invoke(ctx context.Context, profileID, directory string) (actions.Result, error) {
	cmd, ok := b.bound[profileID]
	if !ok {
		return actions.Result{}, errors.Newf(errors.ErrNotFound, "no command bound for profile '%s'", profileID)
	}
	return cmd.Invoke(ctx, directory)
}
