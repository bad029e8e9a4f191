package editor

import (
	"log/slog"

	"github.com/joshuapare/paramkit/bind"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Options controls editor construction.
type Options struct {
	// Section is the section for descriptors added without an explicit
	// section, and the fallback for bound properties without a category.
	// Default: "Properties".
	Section string

	// Logger receives binder and persistence warnings.
	// Default: discard all output.
	Logger *slog.Logger
}

// ExportOptions controls textual persistence emission.
// This is an alias to types.ExportOptions for convenience.
type ExportOptions = types.ExportOptions

func (o Options) withDefaults() Options {
	if o.Section == "" {
		o.Section = bind.DefaultSection
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	return o
}
