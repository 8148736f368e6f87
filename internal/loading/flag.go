// Package loading holds the in-process "loading" flags that report whether an
// operation on a given domain (levels, stores, users) is in progress.
package loading

import (
	"sync"
)

// Domain names the operation family a flag reports on.
type Domain string

const (
	Level Domain = "level"
	Store Domain = "store"
	User  Domain = "user"
)

// Flag is a single named loading flag. It reports true while an external
// owner has set it or while any in-process operation started with Begin is
// running. The zero value is not usable, create flags with NewFlag.
type Flag struct {
	domain Domain

	mu       sync.RWMutex
	external bool
	holders  int
}

// NewFlag returns a flag for the given domain with loading set to false.
func NewFlag(d Domain) *Flag {
	return &Flag{domain: d}
}

// Domain returns the name the flag was created with.
func (f *Flag) Domain() Domain {
	return f.domain
}

// Get returns the current value of the flag.
func (f *Flag) Get() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.external || f.holders > 0
}

// Set records the state of an operation owned outside this process. It does
// not touch operations started with Begin.
func (f *Flag) Set(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.external = v
}

// Begin marks an in-process operation as started and returns the function
// that ends it. Calling the returned function more than once has no further
// effect.
func (f *Flag) Begin() func() {
	f.mu.Lock()
	f.holders++
	f.mu.Unlock()

	return sync.OnceFunc(func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.holders--
	})
}
