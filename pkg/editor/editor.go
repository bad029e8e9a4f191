// Package editor is the high-level facade over the parameter model: it owns
// one editing session, wires the reflective binder into it, drives the
// commit/cancel transaction, and persists the whole parameter set through the
// textual and snapshot codecs.
//
// Typical usage:
//
//	ed := editor.New(editor.Options{})
//	ed.Add(param.NewInt("Answer", &answer, 0, 100, 1, ""))
//	ed.Bind(&cfg)
//	// ... edit shadow values through ed.Find(...).Set(...) ...
//	outcome, err := ed.Commit()
package editor

import (
	"io"
	"log/slog"

	"github.com/joshuapare/paramkit/bind"
	"github.com/joshuapare/paramkit/internal/xmltext"
	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Editor owns one editing session and its persistence codecs. It is not safe
// for concurrent use.
type Editor struct {
	sess    *session.Session
	codec   *xmltext.Codec
	section string
	logger  *slog.Logger
}

// New creates an editor with an open session.
func New(opts Options) *Editor {
	opts = opts.withDefaults()
	return &Editor{
		sess:    session.New(),
		codec:   xmltext.NewCodec(),
		section: opts.Section,
		logger:  opts.Logger,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Session exposes the underlying session for direct iteration.
func (e *Editor) Session() *session.Session { return e.sess }

// Add registers a descriptor in the default section.
func (e *Editor) Add(p *param.Param) error {
	return e.sess.Register(e.section, p)
}

// AddTo registers a descriptor in a named section.
func (e *Editor) AddTo(section string, p *param.Param) error {
	return e.sess.Register(section, p)
}

// Find returns the registered descriptor with the given name, or nil.
func (e *Editor) Find(name string) *param.Param {
	return e.sess.Find(name)
}

// Bind reflects over a pointer-to-struct and registers one descriptor per
// supported, writable exported field. Unsupported fields are reported in the
// returned diagnostics, never as an error.
func (e *Editor) Bind(obj any) (*types.DiagnosticReport, error) {
	return bind.Struct(e.sess, obj, bind.Options{Section: e.section, Logger: e.logger})
}

// BindHost binds an arbitrary property host.
func (e *Editor) BindHost(host types.Host) (*types.DiagnosticReport, error) {
	return bind.Object(e.sess, host, bind.Options{Section: e.section, Logger: e.logger})
}

// Commit applies every shadow value and closes the session.
func (e *Editor) Commit() (types.Outcome, error) {
	if err := e.sess.Commit(); err != nil {
		return types.OutcomeCancelled, err
	}
	e.logger.Info("session committed", "params", e.sess.Len())
	return types.OutcomeCommitted, nil
}

// Cancel discards every shadow value and closes the session. Idempotent.
func (e *Editor) Cancel() types.Outcome {
	e.sess.Cancel()
	return types.OutcomeCancelled
}

// Outcome reports the terminal result. ok is false while the session is open.
func (e *Editor) Outcome() (types.Outcome, bool) {
	return e.sess.Outcome()
}
