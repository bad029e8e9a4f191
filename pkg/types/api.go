package types

import (
	"fmt"
	"math"
	"reflect"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnsupported ErrKind = iota // property type outside the closed dispatch table
	ErrKindValue                      // persisted attribute malformed or missing
	ErrKindState                      // invalid operation for current session state
	ErrKindIO                         // save/load sink or source could not be opened
	ErrKindConflict                   // duplicate descriptor name within a session
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets wrapped copies of a sentinel (same kind and message) match it
// through errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Sentinels commonly returned by implementations.
var (
	// ErrUnsupportedType indicates a bound property's type has no editor kind.
	ErrUnsupportedType = &Error{Kind: ErrKindUnsupported, Msg: "unsupported property type"}
	// ErrMalformedValue indicates a persisted attribute failed to parse.
	ErrMalformedValue = &Error{Kind: ErrKindValue, Msg: "malformed persisted value"}
	// ErrMissingAttr indicates an expected attribute was absent on load.
	ErrMissingAttr = &Error{Kind: ErrKindValue, Msg: "missing persisted attribute"}
	// ErrSinkUnavailable indicates the save target could not be opened.
	ErrSinkUnavailable = &Error{Kind: ErrKindIO, Msg: "save sink unavailable"}
	// ErrSourceUnavailable indicates the load source could not be opened.
	ErrSourceUnavailable = &Error{Kind: ErrKindIO, Msg: "load source unavailable"}
	// ErrSessionClosed indicates a mutation after the session reached a terminal state.
	ErrSessionClosed = &Error{Kind: ErrKindState, Msg: "session is closed"}
	// ErrDuplicateName indicates two descriptors were registered under one name.
	ErrDuplicateName = &Error{Kind: ErrKindConflict, Msg: "duplicate parameter name"}
	// ErrKindMismatch indicates a value of the wrong kind was pushed into a descriptor.
	ErrKindMismatch = &Error{Kind: ErrKindValue, Msg: "parameter value has different kind"}
)

// -----------------------------------------------------------------------------
// Parameter Kinds
// -----------------------------------------------------------------------------

// Kind enumerates the closed set of editor value kinds. A descriptor's kind
// never changes after construction; adding a kind is a compile-time-checked
// change to every switch in the model.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindDouble
	KindString
	KindPassword
	KindCombo
	KindColor
	KindFont
	KindFilePath
	KindDirPath
	KindDate
	KindTime
	KindDateTime
	KindPoint
	KindSize
	KindRect
	KindRange
	KindStringList
	KindVariant
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindPassword:
		return "Password"
	case KindCombo:
		return "Combo"
	case KindColor:
		return "Color"
	case KindFont:
		return "Font"
	case KindFilePath:
		return "FilePath"
	case KindDirPath:
		return "DirPath"
	case KindDate:
		return "Date"
	case KindTime:
		return "Time"
	case KindDateTime:
		return "DateTime"
	case KindPoint:
		return "Point"
	case KindSize:
		return "Size"
	case KindRect:
		return "Rect"
	case KindRange:
		return "Range"
	case KindStringList:
		return "StringList"
	case KindVariant:
		return "Variant"
	default:
		return fmt.Sprintf("UNKNOWN_KIND_%d", uint8(k))
	}
}

// -----------------------------------------------------------------------------
// Constraints
// -----------------------------------------------------------------------------

// Limits holds the numeric edit constraints for Int, Float, Double and Range
// descriptors. The editing surface clamps to [Min, Max] in increments of Step;
// the model trusts shadow values to already be in range.
type Limits struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultLimits returns the theoretical extremes for a numeric kind with a
// unit step. Non-numeric kinds get a zero Limits.
func DefaultLimits(k Kind) Limits {
	switch k {
	case KindInt:
		return Limits{Min: math.MinInt32, Max: math.MaxInt32, Step: 1}
	case KindFloat:
		return Limits{Min: -math.MaxFloat32, Max: math.MaxFloat32, Step: 1}
	case KindDouble, KindRange:
		return Limits{Min: -math.MaxFloat64, Max: math.MaxFloat64, Step: 1}
	default:
		return Limits{}
	}
}

// InputHints is a bitset of text-entry hints forwarded to the editing surface
// for String and Password descriptors.
type InputHints uint32

const (
	HintNone             InputHints = 0
	HintHiddenText       InputHints = 1 << 0 // mask echoed characters
	HintNoPredictiveText InputHints = 1 << 1
	HintDigitsOnly       InputHints = 1 << 2
)

// -----------------------------------------------------------------------------
// Session Outcome
// -----------------------------------------------------------------------------

// Outcome is the two-valued result of a finished editing session.
type Outcome int

const (
	OutcomeCancelled Outcome = iota
	OutcomeCommitted
)

// String implements the Stringer interface for Outcome.
func (o Outcome) String() string {
	if o == OutcomeCommitted {
		return "Committed"
	}
	return "Cancelled"
}

// -----------------------------------------------------------------------------
// Binder Capability Set
// -----------------------------------------------------------------------------

// PropertyMeta describes one reflective property of a Host: its name, its
// declared Go type and whether it accepts writes. Read-only properties are
// never bound.
type PropertyMeta struct {
	Name     string
	Type     reflect.Type
	Writable bool
}

// Host is the capability set the binder requires from an object: enumerate
// properties in declaration order, read a named property (metadata probes use
// the ok flag as the "absent" signal), and write a typed value back.
//
// Implementations are not required to be concurrency-safe; the binder and the
// session call them from a single goroutine.
type Host interface {
	// Properties lists the object's properties in declaration order.
	Properties() []PropertyMeta

	// Get reads a named property. ok is false when the property does not
	// exist; metadata probing relies on this instead of an error.
	Get(name string) (v any, ok bool)

	// Set writes a typed value into a named property. The value's type must
	// be assignable or convertible to the property's declared type.
	Set(name string, v any) error
}

// Enum marks a named integer type as an enumerated property. The binder maps
// such properties to Combo descriptors whose options are the enumerator key
// names and whose shadow value is the integer index.
type Enum interface {
	EnumNames() []string
}

// -----------------------------------------------------------------------------
// Persistence Options
// -----------------------------------------------------------------------------

// ExportOptions controls textual persistence emission.
type ExportOptions struct {
	// Encoding selects the output encoding: "UTF-8" (default) or "UTF-16LE".
	Encoding string

	// WithBOM includes a byte-order mark in the output.
	WithBOM bool
}
