package fonts

import (
	"sync"

	"github.com/rs/zerolog"
)

// Loader makes a font available to the rendering surface. Ensure is
// idempotent per font name and must never block its caller on network
// work; the draft engine fires it and moves on.
type Loader interface {
	Ensure(name string, weights []int)
}

// LogLoader is the default Loader: it records the request once per font
// name and does nothing else. Rendering surfaces with real font
// pipelines supply their own Loader.
type LogLoader struct {
	logger zerolog.Logger

	mu     sync.Mutex
	loaded map[string]struct{}
}

// NewLogLoader creates a LogLoader.
func NewLogLoader(logger zerolog.Logger) *LogLoader {
	return &LogLoader{
		logger: logger,
		loaded: make(map[string]struct{}),
	}
}

// Ensure logs the first request for each font name and ignores repeats.
func (l *LogLoader) Ensure(name string, weights []int) {
	if name == "" {
		return
	}
	l.mu.Lock()
	if _, done := l.loaded[name]; done {
		l.mu.Unlock()
		return
	}
	l.loaded[name] = struct{}{}
	l.mu.Unlock()

	l.logger.Debug().Str("font", name).Ints("weights", weights).Msg("font requested")
}
