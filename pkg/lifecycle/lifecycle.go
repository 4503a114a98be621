package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formgen-visualeditor/pkg/codec"
	"github.com/goliatone/go-formgen-visualeditor/pkg/editor"
)

// ErrNotLive is returned when an event targets an editor id without a live
// session.
var ErrNotLive = errors.New("lifecycle: editor is not live")

// Event names an editor change notification.
type Event string

// Editor events that trigger a storage sync.
const (
	EventUpdate          Event = "update"
	EventComponentUpdate Event = "component:update"
	EventComponentAdd    Event = "component:add"
	EventComponentRemove Event = "component:remove"
	EventCustomCSS       Event = "custom-css:input"
)

// SyncEvents lists every event that re-serialises an editor into its storage
// field.
func SyncEvents() []Event {
	return []Event{EventUpdate, EventComponentUpdate, EventComponentAdd, EventComponentRemove, EventCustomCSS}
}

func (e Event) syncs() bool {
	switch e {
	case EventUpdate, EventComponentUpdate, EventComponentAdd, EventComponentRemove, EventCustomCSS:
		return true
	default:
		return false
	}
}

// Session is a live editor instance.
type Session interface {
	HTML() string
	CSS() string
	Destroy() error
}

// Factory creates editor sessions from init options.
type Factory interface {
	New(ctx context.Context, opts editor.Init) (Session, error)
}

// FactoryFunc adapts a function into a Factory.
type FactoryFunc func(ctx context.Context, opts editor.Init) (Session, error)

// New calls the underlying function.
func (fn FactoryFunc) New(ctx context.Context, opts editor.Init) (Session, error) {
	return fn(ctx, opts)
}

// FieldHandle is the on-screen field an editor is mounted into.
type FieldHandle interface {
	EditorID() string
	StorageValue() string
	SetStorageValue(value string)
	CustomCSS() string
	SetCustomCSS(css string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithEditorConfig replaces the default palette, sectors and devices passed to
// new sessions.
func WithEditorConfig(cfg editor.Config) Option {
	return func(c *Controller) {
		c.config = cfg.Clone()
	}
}

type instance struct {
	field   FieldHandle
	session Session
}

// Controller owns the editor sessions of a page keyed by editor id.
type Controller struct {
	mu        sync.Mutex
	factory   Factory
	config    editor.Config
	instances map[string]*instance
	pending   map[string]struct{}
}

// NewController builds a controller that creates sessions through factory.
func NewController(factory Factory, options ...Option) (*Controller, error) {
	if factory == nil {
		return nil, errors.New("lifecycle: factory is required")
	}
	c := &Controller{
		factory:   factory,
		config:    editor.DefaultConfig(),
		instances: make(map[string]*instance),
		pending:   make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// OnFieldReady mounts an editor for a field present on page load.
func (c *Controller) OnFieldReady(ctx context.Context, field FieldHandle) error {
	return c.mount(ctx, field)
}

// OnFieldAppended mounts an editor for a field added after page load.
func (c *Controller) OnFieldAppended(ctx context.Context, field FieldHandle) error {
	return c.mount(ctx, field)
}

func (c *Controller) mount(ctx context.Context, field FieldHandle) error {
	if field == nil {
		return nil
	}
	id := strings.TrimSpace(field.EditorID())
	if id == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	_, live := c.instances[id]
	_, starting := c.pending[id]
	if live || starting {
		c.mu.Unlock()
		return nil
	}
	c.pending[id] = struct{}{}
	c.mu.Unlock()

	value := codec.Decode(field.StorageValue())
	field.SetCustomCSS(value.CustomCSS)

	// The lock is released while the editor initialises: editors emit change
	// events during load and those re-enter Notify.
	session, err := c.factory.New(ctx, editor.InitOptions(id, value, c.config))
	if err == nil && session == nil {
		err = errors.New("factory returned no session")
	}

	c.mu.Lock()
	_, stillPending := c.pending[id]
	delete(c.pending, id)
	_, raced := c.instances[id]
	if err == nil && stillPending && !raced {
		c.instances[id] = &instance{field: field, session: session}
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	if err != nil {
		return fmt.Errorf("lifecycle: init %s: %w", id, err)
	}
	// removed, closed or mounted elsewhere while initialising
	if err := session.Destroy(); err != nil {
		return fmt.Errorf("lifecycle: destroy %s: %w", id, err)
	}
	return nil
}

// OnFieldRemoved destroys the editor mounted into field. Unknown fields are
// ignored.
func (c *Controller) OnFieldRemoved(field FieldHandle) error {
	if field == nil {
		return nil
	}
	id := strings.TrimSpace(field.EditorID())

	c.mu.Lock()
	inst, ok := c.instances[id]
	delete(c.instances, id)
	delete(c.pending, id)
	c.mu.Unlock()

	if !ok {
		return nil
	}
	if err := inst.session.Destroy(); err != nil {
		return fmt.Errorf("lifecycle: destroy %s: %w", id, err)
	}
	return nil
}

// Notify handles an editor event. Sync events replace the storage value with
// the envelope of the current editor state; other events are ignored.
func (c *Controller) Notify(id string, event Event) error {
	if !event.syncs() {
		return nil
	}
	return c.Sync(id)
}

// Sync writes the current editor state of id into its storage field. Editors
// still initialising are skipped.
func (c *Controller) Sync(id string) error {
	id = strings.TrimSpace(id)
	c.mu.Lock()
	inst, ok := c.instances[id]
	_, starting := c.pending[id]
	c.mu.Unlock()
	if starting {
		return nil
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotLive, id)
	}

	inst.field.SetStorageValue(codec.EncodeParts(
		inst.session.HTML(),
		inst.session.CSS(),
		inst.field.CustomCSS(),
	))
	return nil
}

// Live reports whether id has a mounted editor.
func (c *Controller) Live(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.instances[strings.TrimSpace(id)]
	return ok
}

// Len returns the number of live editors.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instances)
}

// IDs returns the live editor ids in sorted order.
func (c *Controller) IDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]string, 0, len(c.instances))
	for id := range c.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Close destroys every live editor.
func (c *Controller) Close() error {
	c.mu.Lock()
	instances := c.instances
	c.instances = make(map[string]*instance)
	c.pending = make(map[string]struct{})
	c.mu.Unlock()

	var errs []error
	for id, inst := range instances {
		if err := inst.session.Destroy(); err != nil {
			errs = append(errs, fmt.Errorf("lifecycle: destroy %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
