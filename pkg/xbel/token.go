package xbel

// Kind identifies the syntactic kind of an XML token.
type Kind byte

const (
	KindNone Kind = iota
	KindXMLDecl
	KindStartElement
	KindEmptyElement
	KindEndElement
	KindCharData
	KindComment
	KindCDATA
	KindProcInst
	KindDirective
)

// String returns a stable name for the kind, suitable for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindXMLDecl:
		return "XMLDecl"
	case KindStartElement:
		return "StartElement"
	case KindEmptyElement:
		return "EmptyElement"
	case KindEndElement:
		return "EndElement"
	case KindCharData:
		return "CharData"
	case KindComment:
		return "Comment"
	case KindCDATA:
		return "CDATA"
	case KindProcInst:
		return "ProcInst"
	case KindDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}

// Attr is one attribute of a start or empty element. Name and Value hold
// the bytes exactly as written in the input; Value keeps entity escapes
// and percent escapes unresolved and is not guaranteed to be valid UTF-8
// once decoded.
type Attr struct {
	Name  []byte
	Value []byte
}

// Token is a view of one XML token. Raw holds the exact input bytes the
// token was lexed from, so writing Raw for every token reproduces the
// document byte for byte. All slices alias the lexer's internal buffer
// and are only valid until the next call to Lexer.Next.
type Token struct {
	Kind   Kind
	Name   []byte // start, empty and end elements: the full qualified name
	Attrs  []Attr // start and empty elements only
	Text   []byte // char data, still entity-escaped
	Raw    []byte
	Line   int
	Column int
}
