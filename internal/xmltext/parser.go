package xmltext

import (
	"bytes"
	"encoding/xml"
	"io"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

// Load streams top-level elements from r and routes each to the first
// descriptor whose name matches the element tag. Elements matching no
// descriptor are ignored; descriptors with no matching element keep their
// current value. Attribute-level problems are swallowed by Restore; only a
// structurally broken document surfaces as an error.
func Load(r io.Reader, s *session.Session) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "read persisted parameters", Err: err}
	}
	raw, err = normalize(raw)
	if err != nil {
		return err
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &types.Error{Kind: types.ErrKindValue, Msg: "malformed parameter document", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 {
				continue // depth 1 is the root container
			}
			if p := s.Find(t.Name.Local); p != nil {
				p.Restore(record(t))
			}
			if err := dec.Skip(); err != nil {
				return &types.Error{Kind: types.ErrKindValue, Msg: "malformed parameter document", Err: err}
			}
			depth--
		case xml.EndElement:
			depth--
		}
	}
}

func record(se xml.StartElement) param.Record {
	rec := param.Record{Name: se.Name.Local}
	for _, a := range se.Attr {
		rec.Attrs = append(rec.Attrs, param.Attr{Key: a.Name.Local, Value: a.Value})
	}
	return rec
}

// normalize strips a BOM and transcodes UTF-16LE input to UTF-8 so the XML
// layer always sees UTF-8 bytes.
func normalize(raw []byte) ([]byte, error) {
	if bytes.HasPrefix(raw, UTF16LEBOM) || looksUTF16LE(raw) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(bytes.TrimPrefix(raw, UTF16LEBOM))
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindValue, Msg: "decode UTF-16LE document", Err: err}
		}
		return out, nil
	}
	return bytes.TrimPrefix(raw, UTF8BOM), nil
}

// looksUTF16LE detects BOM-less UTF-16LE by the NUL high byte after the
// leading '<' every document starts with.
func looksUTF16LE(raw []byte) bool {
	return len(raw) >= 2 && raw[0] == '<' && raw[1] == 0x00
}
