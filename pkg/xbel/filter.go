package xbel

import (
	"bufio"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"
)

const bookmarkTag = "bookmark"

// Filter copies the XML manifest from r to w, dropping every bookmark
// element whose decoded file:// path starts with one of the given
// prefixes. Retained content is reproduced byte for byte; after each
// removed element at most one whitespace-only text node is dropped as
// well, so the one-entry-per-line formatting does not accumulate blank
// lines.
//
// The manifest is assumed to be a flat list: bookmark elements never
// nest inside one another. The whole pass is a single synchronous
// iteration; on any error the output is incomplete and must be
// discarded, the input is never modified here.
func Filter(r io.Reader, w io.Writer, prefixes []string) error {
	lx := NewLexer(r)
	bw := bufio.NewWriter(w)

	skipping := false
	swallowWhitespace := false

	for {
		tok, err := lx.Next()
		if errors.Is(err, io.EOF) {
			if skipping {
				// Input ended inside a removed bookmark subtree.
				return lx.errorf(errUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return err
		}

		if skipping {
			if tok.Kind == KindEndElement && string(tok.Name) == bookmarkTag {
				skipping = false
				swallowWhitespace = true
			}
			continue
		}

		switch tok.Kind {
		case KindStartElement:
			if string(tok.Name) == bookmarkTag {
				c, err := classifyHref(tok.Attrs)
				if err != nil {
					return err
				}
				if c.local && matchesPrefix(prefixes, c.path) {
					skipping = true
					continue
				}
			}
		case KindCharData:
			// The swallow flag is armed when a removed bookmark closes and
			// stays armed across intervening tags: it is consumed by the
			// next text node wherever that appears.
			if swallowWhitespace {
				swallowWhitespace = false
				text, err := unescapeText(tok.Text)
				if err != nil {
					return &SyntaxError{Line: tok.Line, Column: tok.Column, Err: err}
				}
				if !isAllWhitespace(text) {
					return &StructureError{Text: string(text)}
				}
				continue
			}
		case KindEmptyElement, KindEndElement, KindXMLDecl:
			// Forwarded unchanged. Empty bookmark tags carry no subtree
			// and are never removal candidates.
		default:
			return &UnsupportedTokenError{Kind: tok.Kind, Line: tok.Line, Column: tok.Column}
		}

		if _, err := bw.Write(tok.Raw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func isAllWhitespace(b []byte) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if !unicode.IsSpace(r) {
			return false
		}
		b = b[size:]
	}
	return true
}
