package session

import (
	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/pkg/types"
)

// State is the session lifecycle state.
type State int

const (
	StateOpen      State = iota // registration and editing allowed
	StateCommitted              // terminal: shadows applied
	StateCancelled              // terminal: shadows discarded
)

// String implements the Stringer interface for State.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateCommitted:
		return "Committed"
	default:
		return "Cancelled"
	}
}

// Section is a named, ordered group of descriptors. Its position among the
// session's sections is fixed at first registration of its name.
type Section struct {
	name   string
	params []*param.Param
}

// Name returns the section key.
func (s *Section) Name() string { return s.name }

// Params returns the section's descriptors in registration order.
func (s *Section) Params() []*param.Param {
	out := make([]*param.Param, len(s.params))
	copy(out, s.params)
	return out
}

// Session owns an ordered collection of named sections, each an ordered
// sequence of descriptors, and drives the deferred-commit transaction:
//
//	Open -> Committed (apply every shadow, fire hooks)
//	Open -> Cancelled (discard every shadow)
//
// Both transitions are terminal. The session is not safe for concurrent use;
// a multi-threaded host must serialize calls itself.
type Session struct {
	state    State
	sections []*Section
	byName   map[string]*Section
	names    map[string]struct{}
	hooks    []func()
}

// New creates an open session with no sections.
func New() *Session {
	return &Session{
		byName: make(map[string]*Section),
		names:  make(map[string]struct{}),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Outcome maps the terminal state to the caller-facing result. An open
// session reports Cancelled with ok=false.
func (s *Session) Outcome() (types.Outcome, bool) {
	switch s.state {
	case StateCommitted:
		return types.OutcomeCommitted, true
	case StateCancelled:
		return types.OutcomeCancelled, true
	default:
		return types.OutcomeCancelled, false
	}
}

// Section returns the section for name, creating it at the end of the
// section list on first use. Returns nil once the session is closed.
func (s *Session) Section(name string) *Section {
	if s.state != StateOpen {
		return nil
	}
	if sec, ok := s.byName[name]; ok {
		return sec
	}
	sec := &Section{name: name}
	s.sections = append(s.sections, sec)
	s.byName[name] = sec
	return sec
}

// Sections returns the sections in creation order.
func (s *Session) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Register appends a descriptor to the named section. Descriptor names are
// unique across the whole session: serialization matches records by name.
func (s *Session) Register(section string, p *param.Param) error {
	if s.state != StateOpen {
		return types.ErrSessionClosed
	}
	if _, dup := s.names[p.Name()]; dup {
		return types.ErrDuplicateName
	}
	sec := s.Section(section)
	sec.params = append(sec.params, p)
	s.names[p.Name()] = struct{}{}
	return nil
}

// OnCommit registers a hook to run after all descriptors have been applied,
// in registration order. The binder uses this to finalize write-back.
func (s *Session) OnCommit(fn func()) error {
	if s.state != StateOpen {
		return types.ErrSessionClosed
	}
	s.hooks = append(s.hooks, fn)
	return nil
}

// Commit applies every descriptor's shadow value in section-major
// registration order, then fires the commit hooks, and closes the session.
// There is no partial-commit state: once commit begins, every descriptor is
// applied unconditionally.
func (s *Session) Commit() error {
	if s.state != StateOpen {
		return types.ErrSessionClosed
	}
	for _, sec := range s.sections {
		for _, p := range sec.params {
			p.Apply()
		}
	}
	for _, fn := range s.hooks {
		fn()
	}
	s.state = StateCommitted
	return nil
}

// Cancel discards all shadow state and closes the session. No writes are
// performed. Calling Cancel on an already-closed session is a no-op.
func (s *Session) Cancel() {
	if s.state != StateOpen {
		return
	}
	s.state = StateCancelled
}

// Len returns the total number of registered descriptors.
func (s *Session) Len() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.params)
	}
	return n
}

// Walk visits every descriptor in section-major registration order, the
// canonical order for commit and serialization. A non-nil error aborts the
// walk.
func (s *Session) Walk(fn func(section string, p *param.Param) error) error {
	for _, sec := range s.sections {
		for _, p := range sec.params {
			if err := fn(sec.name, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// Find returns the first descriptor whose name matches, scanning sections in
// order, or nil. Load resolution uses this.
func (s *Session) Find(name string) *param.Param {
	for _, sec := range s.sections {
		for _, p := range sec.params {
			if p.Name() == name {
				return p
			}
		}
	}
	return nil
}
