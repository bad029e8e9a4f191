package editor

import (
	"io"
	"os"

	"github.com/joshuapare/paramkit/internal/snapshot"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Save writes the parameter document to w.
func (e *Editor) Save(w io.Writer, opts ExportOptions) error {
	return e.codec.Save(w, e.sess, opts)
}

// Load restores matching descriptors from a parameter document. Unknown
// elements are skipped; missing or malformed attributes leave the target
// descriptor untouched.
func (e *Editor) Load(r io.Reader) error {
	return e.codec.Load(r, e.sess)
}

// SaveFile writes the parameter document to path. A sink that cannot be
// opened reports types.ErrSinkUnavailable.
func (e *Editor) SaveFile(path string, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		e.logger.Warn("save failed", "path", path, "error", err)
		return &types.Error{Kind: types.ErrKindIO, Msg: types.ErrSinkUnavailable.Msg, Err: err}
	}
	defer f.Close()
	if err := e.Save(f, opts); err != nil {
		return err
	}
	return f.Sync()
}

// LoadFile restores descriptors from the parameter document at path. A source
// that cannot be opened reports types.ErrSourceUnavailable.
func (e *Editor) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		e.logger.Warn("load failed", "path", path, "error", err)
		return &types.Error{Kind: types.ErrKindIO, Msg: types.ErrSourceUnavailable.Msg, Err: err}
	}
	defer f.Close()
	return e.Load(f)
}

// ExportSnapshot writes the JSON snapshot document to w.
func (e *Editor) ExportSnapshot(w io.Writer) error {
	return snapshot.Export(w, e.sess)
}

// ImportSnapshot restores matching descriptors from a JSON snapshot document.
func (e *Editor) ImportSnapshot(r io.Reader) error {
	return snapshot.Import(r, e.sess)
}
