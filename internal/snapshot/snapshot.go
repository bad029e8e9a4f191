// Package snapshot implements the secondary JSON persistence format. It
// carries the same per-descriptor record stream as the XML codec, so the two
// formats are interchangeable for round-tripping a session.
package snapshot

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

type document struct {
	Params []record `json:"params"`
}

type record struct {
	Name  string `json:"name"`
	Attrs []attr `json:"attrs"`
}

type attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Export writes every descriptor's record, in section-major registration
// order, as an indented JSON document.
func Export(w io.Writer, s *session.Session) error {
	doc := document{Params: make([]record, 0, s.Len())}
	_ = s.Walk(func(_ string, p *param.Param) error {
		snap := p.Snapshot()
		rec := record{Name: snap.Name}
		for _, a := range snap.Attrs {
			rec.Attrs = append(rec.Attrs, attr{Key: a.Key, Value: a.Value})
		}
		doc.Params = append(doc.Params, rec)
		return nil
	})
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Import restores matching descriptors from a JSON document produced by
// Export. Unknown names are ignored; attribute-level problems leave the
// target descriptor untouched.
func Import(r io.Reader, s *session.Session) error {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return &types.Error{Kind: types.ErrKindValue, Msg: "malformed snapshot document", Err: err}
	}
	for _, rec := range doc.Params {
		p := s.Find(rec.Name)
		if p == nil {
			continue
		}
		snap := param.Record{Name: rec.Name}
		for _, a := range rec.Attrs {
			snap.Attrs = append(snap.Attrs, param.Attr{Key: a.Key, Value: a.Value})
		}
		p.Restore(snap)
	}
	return nil
}
