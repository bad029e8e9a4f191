// Package xmltext implements the primary textual persistence format: a flat
// XML document with one element per descriptor (tag = descriptor name,
// attributes per kind). Output may be UTF-8 or UTF-16LE, with or without a
// byte-order mark; input encoding is detected automatically.
//
// Loading is tolerant by contract: unknown elements are skipped, missing or
// malformed attributes leave the target descriptor untouched, and only a
// structurally broken document is reported as an error.
package xmltext

import (
	"io"

	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Codec provides parameter document save/load functionality.
type Codec struct{}

// NewCodec creates a new parameter document codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Save writes the session's descriptors to w.
func (c *Codec) Save(w io.Writer, s *session.Session, opts types.ExportOptions) error {
	return Save(w, s, opts)
}

// Load restores matching descriptors from r.
func (c *Codec) Load(r io.Reader, s *session.Session) error {
	return Load(r, s)
}
