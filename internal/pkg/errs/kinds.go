package errs

import "sync"

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "authorization"
	KindInternal      Kind = "internal"
)

var (
	registryMu sync.RWMutex
	registry   []classified
)

type classified struct {
	sentinel error
	kind     Kind
}

// Sentinel creates a package-level sentinel error and records its kind so
// KindOf can classify anything marked with it.
func Sentinel(msg string, kind Kind) error {
	err := New(msg)
	registryMu.Lock()
	registry = append(registry, classified{sentinel: err, kind: kind})
	registryMu.Unlock()
	return err
}

// KindOf classifies err by the first registered sentinel found in its chain.
// Unclassified errors are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if c, ok := match(err); ok {
		return c.kind
	}
	return KindInternal
}

// SentinelOf returns the registered sentinel err is marked with, if any.
func SentinelOf(err error) (error, bool) {
	if err == nil {
		return nil, false
	}
	c, ok := match(err)
	return c.sentinel, ok
}

func match(err error) (classified, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, c := range registry {
		if Is(err, c.sentinel) {
			return c, true
		}
	}
	return classified{}, false
}
