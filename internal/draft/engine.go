// Package draft implements the working-draft state engine: the single
// live token configuration, its dirty tracking, debounced persistence
// and change notification.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/modcn/modcn/internal/debounce"
	"github.com/modcn/modcn/internal/fonts"
	"github.com/modcn/modcn/internal/models"
	"github.com/modcn/modcn/internal/store"
)

// Engine errors.
var (
	ErrInvalidPresetName = errors.New("preset name is required")
	ErrAlreadySubscribed = errors.New("subscriber id already registered")
	ErrNotSubscribed     = errors.New("subscriber id not registered")
)

// Options configure an Engine.
type Options struct {
	// PersistWindow is the quiet period before a mutated draft is
	// written durably. Default: 500ms.
	PersistWindow time.Duration

	// Logger receives engine diagnostics.
	Logger zerolog.Logger

	// Fonts is notified when a typography token changes. Optional.
	Fonts fonts.Loader

	// Clock supplies timestamps; defaults to time.Now. Injected so
	// tests control preset and version times.
	Clock func() time.Time
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		PersistWindow: 500 * time.Millisecond,
	}
}

// Snapshot is the narrowed projection of engine state observers
// receive. It deliberately excludes tab and group state so bindings
// keyed on tokens and preview mode never fire for layout-only changes.
type Snapshot struct {
	Tokens         models.Tokens
	PreviewMode    models.PreviewMode
	Dirty          bool
	SourcePresetID string
}

// Engine owns the process-wide working draft. All state transitions go
// through its methods; timer callbacks re-enter them as ordinary
// mutations. Construct one per process (or per test).
type Engine struct {
	adapter    *store.Adapter
	logger     zerolog.Logger
	fontLoader fonts.Loader
	clock      func() time.Time

	mu    sync.Mutex
	draft *models.WorkingDraft

	// Transient UI state, never persisted with the draft.
	sidebarOpen bool
	layoutStyle models.LayoutStyle

	persist *debounce.Debouncer

	subsMu sync.RWMutex
	subs   map[string]func(Snapshot)
}

// New creates an Engine, recovering the working draft from the adapter
// or falling back to the system defaults.
func New(adapter *store.Adapter, opts Options) *Engine {
	if opts.PersistWindow <= 0 {
		opts.PersistWindow = DefaultOptions().PersistWindow
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	draft := adapter.LoadWorkingDraft(context.Background())
	if draft == nil {
		draft = models.NewWorkingDraft()
		opts.Logger.Info().Msg("no persisted draft, starting from defaults")
	} else {
		opts.Logger.Info().
			Str("source_preset_id", draft.SourcePresetID).
			Bool("dirty", draft.Dirty).
			Msg("working draft recovered")
	}

	return &Engine{
		adapter:     adapter,
		logger:      opts.Logger,
		fontLoader:  opts.Fonts,
		clock:       opts.Clock,
		draft:       draft,
		sidebarOpen: true,
		layoutStyle: models.LayoutStyleBrand,
		persist:     debounce.New(opts.PersistWindow),
		subs:        make(map[string]func(Snapshot)),
	}
}

// Draft returns a deep copy of the current working draft.
func (e *Engine) Draft() *models.WorkingDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Snapshot returns the narrowed observer projection of current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Tokens:         e.draft.Tokens.Clone(),
		PreviewMode:    e.draft.UI.PreviewMode,
		Dirty:          e.draft.Dirty,
		SourcePresetID: e.draft.SourcePresetID,
	}
}

// Dirty reports whether the draft differs from its last-saved state.
func (e *Engine) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Dirty
}

// SetWorkingDraft replaces the whole draft. Dirty is recomputed by
// comparing the previous tokens and source preset against the incoming
// ones before overwriting: an unchanged payload preserves the existing
// flag so no-op writes never flap the unsaved indicator.
func (e *Engine) SetWorkingDraft(next *models.WorkingDraft) {
	if next == nil {
		return
	}
	e.mu.Lock()
	changed := !e.draft.Tokens.Equal(next.Tokens) || e.draft.SourcePresetID != next.SourcePresetID
	prevTypography := e.draft.Tokens.Shared.Typography

	replacement := next.Clone()
	replacement.Dirty = e.draft.Dirty || changed
	e.draft = replacement
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.requestFonts(prevTypography, next.Tokens.Shared.Typography)
	e.schedulePersist()
	e.notify(snapshot)
}

// UpdateTokens replaces only the draft's tokens, with the same
// comparison-before-overwrite dirty rule as SetWorkingDraft.
func (e *Engine) UpdateTokens(tokens models.Tokens) {
	e.mu.Lock()
	changed := !e.draft.Tokens.Equal(tokens)
	prevTypography := e.draft.Tokens.Shared.Typography

	e.draft.Tokens = tokens.Clone()
	if changed {
		e.draft.Dirty = true
	}
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.requestFonts(prevTypography, tokens.Shared.Typography)
	e.schedulePersist()
	e.notify(snapshot)
}

// SetPreviewMode switches the active color mode. UI state is persisted
// so it survives reload, but never marks content as unsaved.
func (e *Engine) SetPreviewMode(mode models.PreviewMode) {
	if models.ParsePreviewMode(string(mode)) == "" {
		return
	}
	e.mu.Lock()
	e.draft.UI.PreviewMode = mode
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
}

// SetSidebarTab records the active editing tab.
func (e *Engine) SetSidebarTab(tab models.SidebarTab) {
	e.mu.Lock()
	e.draft.UI.SidebarTab = tab
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
}

// SetPreviewTab records the active preview surface.
func (e *Engine) SetPreviewTab(tab models.PreviewTab) {
	e.mu.Lock()
	e.draft.UI.PreviewTab = tab
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
}

// SetExpandedGroups records which sidebar groups are expanded.
func (e *Engine) SetExpandedGroups(groups map[string]bool) {
	e.mu.Lock()
	copied := make(map[string]bool, len(groups))
	for k, v := range groups {
		copied[k] = v
	}
	e.draft.UI.ExpandedGroups = copied
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
}

// SetSidebarOpen records the transient sidebar visibility. Not
// persisted.
func (e *Engine) SetSidebarOpen(open bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sidebarOpen = open
}

// SidebarOpen reports the transient sidebar visibility.
func (e *Engine) SidebarOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sidebarOpen
}

// SetLayoutStyle records the transient preview layout. Not persisted.
func (e *Engine) SetLayoutStyle(style models.LayoutStyle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layoutStyle = style
}

// LayoutStyle reports the transient preview layout.
func (e *Engine) LayoutStyle() models.LayoutStyle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layoutStyle
}

// ResetWorkingDraft restores the draft's tokens to its source preset's
// current latest version, or to the system defaults when the draft has
// no resolvable source. Stored presets and versions are never touched.
func (e *Engine) ResetWorkingDraft() {
	restored := models.DefaultTokens()

	e.mu.Lock()
	sourceID := e.draft.SourcePresetID
	e.mu.Unlock()

	if sourceID != "" {
		if preset, err := e.adapter.LoadPreset(context.Background(), sourceID); err == nil {
			restored = preset.Tokens.Clone()
		} else {
			e.logger.Debug().Str("preset_id", sourceID).Msg("source preset unresolvable, resetting to defaults")
		}
	}

	e.mu.Lock()
	e.draft.Tokens = restored
	e.draft.Dirty = false
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.schedulePersist()
	e.notify(snapshot)
}

// SubscribeFunc registers a change observer under an id. Observers are
// invoked synchronously after every mutation with the narrowed
// snapshot.
func (e *Engine) SubscribeFunc(id string, fn func(Snapshot)) error {
	if fn == nil {
		return fmt.Errorf("subscriber callback is required")
	}
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if _, exists := e.subs[id]; exists {
		return ErrAlreadySubscribed
	}
	e.subs[id] = fn
	return nil
}

// Unsubscribe removes a previously registered observer.
func (e *Engine) Unsubscribe(id string) error {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if _, exists := e.subs[id]; !exists {
		return ErrNotSubscribed
	}
	delete(e.subs, id)
	return nil
}

func (e *Engine) notify(snapshot Snapshot) {
	e.subsMu.RLock()
	callbacks := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		callbacks = append(callbacks, fn)
	}
	e.subsMu.RUnlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}

// schedulePersist arms the persistence debounce. A burst of mutations
// collapses to a single durable write of the final state.
func (e *Engine) schedulePersist() {
	e.persist.Trigger(e.flushDraft)
}

func (e *Engine) flushDraft() {
	e.mu.Lock()
	draft := e.draft.Clone()
	e.mu.Unlock()

	// Failure is logged by the adapter; in-memory state stays
	// authoritative either way.
	_ = e.adapter.SaveWorkingDraft(context.Background(), draft)
}

// Flush writes any pending draft state immediately.
func (e *Engine) Flush() {
	e.persist.Flush()
}

// Close flushes pending persistence and stops the engine's timers.
func (e *Engine) Close() {
	e.persist.Flush()
	e.persist.Stop()
}

// requestFonts fires the font loader for every changed font-* typography
// entry. The call never blocks a mutation and its outcome is ignored.
func (e *Engine) requestFonts(prev, next map[string]string) {
	if e.fontLoader == nil {
		return
	}
	for key, value := range next {
		if len(key) < 5 || key[:5] != "font-" {
			continue
		}
		if prev[key] == value {
			continue
		}
		option, ok := fonts.Lookup(value)
		if !ok {
			continue
		}
		go e.fontLoader.Ensure(option.Name, option.Weights)
	}
}
