package xbel

import (
	"errors"
	"fmt"
)

var (
	errUnexpectedEOF  = errors.New("unexpected EOF")
	errInvalidName    = errors.New("invalid XML name")
	errInvalidToken   = errors.New("invalid XML token")
	errInvalidAttr    = errors.New("invalid attribute")
	errInvalidEntity  = errors.New("invalid entity reference")
	errInvalidComment = errors.New("invalid XML comment")
)

// SyntaxError reports input the lexer could not tokenize. It is fatal;
// there is no recovery path for structurally broken manifests.
type SyntaxError struct {
	Offset int64
	Line   int
	Column int
	Err    error
}

// Error formats the syntax error with location and cause.
func (e *SyntaxError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("xml syntax error at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("xml syntax error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// HrefCountError reports a bookmark element that does not carry exactly
// one href attribute.
type HrefCountError struct {
	Count int
}

func (e *HrefCountError) Error() string {
	if e.Count == 0 {
		return "bookmark has no href attribute"
	}
	return fmt.Sprintf("bookmark has %d href attributes, want exactly one", e.Count)
}

// UnrecognizedSchemeError reports an href whose scheme is outside the
// allow-list. The filter refuses to rewrite manifests it does not fully
// understand, so this aborts the whole run.
type UnrecognizedSchemeError struct {
	Href string
}

func (e *UnrecognizedSchemeError) Error() string {
	return fmt.Sprintf("unrecognized href scheme: %s", e.Href)
}

// UnsupportedTokenError reports a well-formed XML construct the manifest
// format does not use, such as a comment or CDATA section outside a
// removed subtree.
type UnsupportedTokenError struct {
	Kind   Kind
	Line   int
	Column int
}

func (e *UnsupportedTokenError) Error() string {
	return fmt.Sprintf("unsupported %s token at line %d, column %d", e.Kind, e.Line, e.Column)
}

// StructureError reports non-whitespace text where a formatting-only text
// node was expected after a removed bookmark. It guards against silently
// corrupting output when the flat-list assumption about the document
// shape does not hold.
type StructureError struct {
	Text string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("expected whitespace after removed bookmark, got %q", e.Text)
}
