package xmltext

const (
	// RootElement is the single container element wrapping all descriptors.
	RootElement = "Params"

	// XMLDeclaration is the processing-instruction body opening every
	// document. The encoding attribute is omitted on purpose: UTF-16LE output
	// is transcoded after emission, and a decoder re-transcodes before
	// parsing, so the byte stream handed to the XML layer is always UTF-8.
	XMLDeclaration = `version="1.0"`

	// Indent is the per-level indentation of emitted documents.
	Indent = "  "

	// EncodingUTF8 is the identifier for UTF-8 encoding.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding.
	EncodingUTF16LE = "UTF-16LE"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
