package loading

import (
	"errors"
	"fmt"
)

// ErrUnknownDomain is returned when a flag is looked up by a name that is not
// one of Level, Store or User.
var ErrUnknownDomain = errors.New("unknown loading domain")

// State is the application-wide set of loading flags. It is built once by the
// composition root and handed to the components that read or drive the flags.
type State struct {
	Level *Flag
	Store *Flag
	User  *Flag
}

// NewState returns a State with all three flags set to false.
func NewState() *State {
	return &State{
		Level: NewFlag(Level),
		Store: NewFlag(Store),
		User:  NewFlag(User),
	}
}

// Domains lists the known domains in a stable order.
func Domains() []Domain {
	return []Domain{Level, Store, User}
}

// Lookup returns the flag registered for name.
func (s *State) Lookup(name string) (*Flag, error) {
	switch Domain(name) {
	case Level:
		return s.Level, nil
	case Store:
		return s.Store, nil
	case User:
		return s.User, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// Snapshot returns the current value of every flag keyed by domain name.
func (s *State) Snapshot() map[string]bool {
	return map[string]bool{
		string(Level): s.Level.Get(),
		string(Store): s.Store.Get(),
		string(User):  s.User.Get(),
	}
}
