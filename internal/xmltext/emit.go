package xmltext

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/paramkit/param"
	"github.com/joshuapare/paramkit/param/session"
	"github.com/joshuapare/paramkit/pkg/types"
)

var errUnsupportedEncoding = &types.Error{Kind: types.ErrKindValue, Msg: "unsupported output encoding"}

// Save emits one element per descriptor under a single root container,
// walking the session in section-major registration order, and writes the
// document to w in the requested encoding.
func Save(w io.Writer, s *session.Session, opts types.ExportOptions) error {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", Indent)

	if err := enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(XMLDeclaration)}); err != nil {
		return err
	}
	root := xml.StartElement{Name: xml.Name{Local: RootElement}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	err := s.Walk(func(_ string, p *param.Param) error {
		return emitRecord(enc, p.Snapshot())
	})
	if err != nil {
		return err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	buf.WriteByte('\n')

	out, err := encode(buf.Bytes(), opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func emitRecord(enc *xml.Encoder, rec param.Record) error {
	start := xml.StartElement{Name: xml.Name{Local: rec.Name}}
	for _, a := range rec.Attrs {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: a.Key},
			Value: a.Value,
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// encode transcodes the UTF-8 document into the requested output encoding.
func encode(doc []byte, opts types.ExportOptions) ([]byte, error) {
	switch strings.ToUpper(opts.Encoding) {
	case "", EncodingUTF8:
		if opts.WithBOM {
			return append(append([]byte{}, UTF8BOM...), doc...), nil
		}
		return doc, nil
	case EncodingUTF16LE:
		return encodeUTF16LE(doc, opts.WithBOM)
	default:
		return nil, errUnsupportedEncoding
	}
}

func encodeUTF16LE(doc []byte, withBOM bool) ([]byte, error) {
	bom := unicode.IgnoreBOM
	if withBOM {
		bom = unicode.UseBOM
	}
	enc := unicode.UTF16(unicode.LittleEndian, bom).NewEncoder()
	out, err := enc.Bytes(doc)
	if err != nil {
		return nil, err
	}
	return out, nil
}
