// Package preview keeps a style target in sync with the working draft:
// an immediate first paint, then debounced resynthesis on every change
// that affects the rendered sheet.
package preview

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/modcn/modcn/internal/css"
	"github.com/modcn/modcn/internal/debounce"
	"github.com/modcn/modcn/internal/draft"
	"github.com/modcn/modcn/internal/models"
)

const subscriberID = "preview-binding"

// Options configure a Binding.
type Options struct {
	// Window is the quiet period before a changed draft is re-rendered.
	// Default: 150ms.
	Window time.Duration

	Logger zerolog.Logger
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{Window: 150 * time.Millisecond}
}

// Binding connects a draft engine to a style target. Only tokens and
// preview mode feed the stylesheet, so tab switches and group toggles
// never trigger resynthesis.
type Binding struct {
	engine  *draft.Engine
	target  StyleTarget
	logger  zerolog.Logger
	resynth *debounce.Debouncer

	// Last projection handed to the debouncer.
	mu         sync.Mutex
	lastTokens models.Tokens
	lastMode   models.PreviewMode
}

// NewBinding creates a Binding. Call Start to render and subscribe.
func NewBinding(engine *draft.Engine, target StyleTarget, opts Options) *Binding {
	if opts.Window <= 0 {
		opts.Window = DefaultOptions().Window
	}
	return &Binding{
		engine:  engine,
		target:  target,
		logger:  opts.Logger,
		resynth: debounce.New(opts.Window),
	}
}

// Start renders the current draft synchronously so the first paint
// never waits out a debounce window, then subscribes for changes.
func (b *Binding) Start() error {
	snapshot := b.engine.Snapshot()
	b.mu.Lock()
	b.lastTokens = snapshot.Tokens
	b.lastMode = snapshot.PreviewMode
	b.mu.Unlock()
	b.render(snapshot.Tokens, snapshot.PreviewMode)

	return b.engine.SubscribeFunc(subscriberID, b.onChange)
}

func (b *Binding) onChange(s draft.Snapshot) {
	b.mu.Lock()
	// Dirty and source transitions do not alter the sheet.
	if s.Tokens.Equal(b.lastTokens) && s.PreviewMode == b.lastMode {
		b.mu.Unlock()
		return
	}
	b.lastTokens = s.Tokens
	b.lastMode = s.PreviewMode
	b.mu.Unlock()

	tokens, mode := s.Tokens, s.PreviewMode
	b.resynth.Trigger(func() {
		b.render(tokens, mode)
	})
}

func (b *Binding) render(tokens models.Tokens, mode models.PreviewMode) {
	sheet := css.PreviewSheet(tokens, mode)
	if err := b.target.Apply(sheet); err != nil {
		b.logger.Error().Err(err).Msg("applying preview stylesheet")
		return
	}
	b.logger.Debug().Str("mode", string(mode)).Int("bytes", len(sheet)).Msg("preview stylesheet applied")
}

// Flush renders any pending change immediately.
func (b *Binding) Flush() {
	b.resynth.Flush()
}

// Close unsubscribes from the engine and renders any pending change.
func (b *Binding) Close() {
	_ = b.engine.Unsubscribe(subscriberID)
	b.resynth.Flush()
	b.resynth.Stop()
}
