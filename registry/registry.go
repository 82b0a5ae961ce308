package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/enumkit/enumkit"
)

// ErrNotRegistered indicates a resolution helper was called with an enum name
// that has not been registered.
var ErrNotRegistered = errors.New("enum is not registered")

var (
	mu     sync.RWMutex
	enums  = make(map[string]*enumkit.Enum)
	logger *slog.Logger
)

// SetLogger sets the logger used for registry warnings. If never called, or
// called with nil, slog.Default() is used.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Register stores an enum under the given name. Re-registering a name
// replaces the previous enum and logs a warning, since it usually means two
// packages claimed the same name.
func Register(name string, e *enumkit.Enum) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := enums[name]; exists {
		log().Warn("enum re-registered, replacing previous definition",
			"name", name)
	}
	enums[name] = e
}

// Lookup returns the enum registered under name.
func Lookup(name string) (*enumkit.Enum, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := enums[name]
	return e, ok
}

// Names returns the registered enum names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(enums))
	for name := range enums {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clear resets the registry. This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()

	enums = make(map[string]*enumkit.Enum)
}

// ToValue resolves input against the named enum's value set. It fails with
// ErrNotRegistered when the name is unknown; otherwise it behaves exactly
// like enumkit.ToEnumValue.
func ToValue(name string, input any, opts ...enumkit.Option) (any, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return enumkit.ToEnumValue(e, input, opts...)
}

// ToKey resolves input to a key of the named enum. It fails with
// ErrNotRegistered when the name is unknown; otherwise it behaves exactly
// like enumkit.ToEnumKey.
func ToKey(name string, input any, opts ...enumkit.Option) (string, bool, error) {
	e, ok := Lookup(name)
	if !ok {
		return "", false, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return enumkit.ToEnumKey(e, input, opts...)
}

// ToKeys resolves input to every matching key of the named enum. It fails
// with ErrNotRegistered when the name is unknown; otherwise it behaves
// exactly like enumkit.ToEnumKeys.
func ToKeys(name string, input any, opts ...enumkit.Option) ([]string, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return enumkit.ToEnumKeys(e, input, opts...)
}

// log returns the configured logger. Callers must hold at least a read lock.
func log() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
