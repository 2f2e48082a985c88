package observability

import (
	"fmt"
	"log/slog"
	"sync"
)

// Names of the built-in observers.
const (
	NameNoop = "noop"
	NameSlog = "slog"
)

var (
	observers = map[string]Observer{}
	mutex     sync.RWMutex
)

// GetObserver returns an observer by name. Registered observers take
// precedence; otherwise "noop" yields NoOpObserver and "slog" a SlogObserver
// on whatever slog.Default() is at the time of the call.
func GetObserver(name string) (Observer, error) {
	mutex.RLock()
	obs, exists := observers[name]
	mutex.RUnlock()
	if exists {
		return obs, nil
	}

	switch name {
	case NameNoop:
		return NoOpObserver{}, nil
	case NameSlog:
		return NewSlogObserver(slog.Default()), nil
	default:
		return nil, fmt.Errorf("unknown observer: %s", name)
	}
}

// Resolve is GetObserver for a caller that owns its logger: "slog" is bound
// to logger and never read from or written to the registry. A nil logger
// falls back to GetObserver.
func Resolve(name string, logger *slog.Logger) (Observer, error) {
	if name == NameSlog && logger != nil {
		return NewSlogObserver(logger), nil
	}

	return GetObserver(name)
}

// RegisterObserver adds or replaces a named observer in the global registry.
// Registering under a built-in name shadows the built-in for GetObserver.
func RegisterObserver(name string, observer Observer) {
	mutex.Lock()
	defer mutex.Unlock()

	observers[name] = observer
}
