// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"strings"
	"unicode"
)

// splitQuoted splits s on unquoted whitespace. Double-quoted segments may
// span whitespace and contain backslash escapes; the quotes are stripped
// and the escapes resolved, so
//
//	"git pull" "git status"
//
// yields two elements, not four.
func splitQuoted(s string) ([]string, error) {
	var out []string
	var cur strings.Builder
	started := false
	inQuote := false
	escaped := false

	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && unicode.IsSpace(r):
			if started {
				out = append(out, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if inQuote || escaped {
		return nil, fmt.Errorf("unterminated quoted value")
	}
	if started {
		out = append(out, cur.String())
	}
	return out, nil
}

// unquoteElements processes values that already arrived as a list: each
// element keeps its internal whitespace and is only unquoted/unescaped.
// An element that opens a double quote without closing it continues into
// the following element (multi-line quoted continuation), joined with a
// newline.
func unquoteElements(elems []string) ([]string, error) {
	out := make([]string, 0, len(elems))
	pending := ""
	open := false

	for _, e := range elems {
		if open {
			body, closed, err := scanQuotedBody(e)
			if err != nil {
				return nil, err
			}
			pending += "\n" + body
			if closed {
				out = append(out, pending)
				pending = ""
				open = false
			}
			continue
		}

		if !strings.HasPrefix(e, `"`) {
			out = append(out, e)
			continue
		}

		body, closed, err := scanQuotedBody(e[1:])
		if err != nil {
			return nil, err
		}
		if closed {
			out = append(out, body)
		} else {
			pending = body
			open = true
		}
	}

	if open {
		return nil, fmt.Errorf("unterminated quoted value")
	}
	return out, nil
}

// scanQuotedBody consumes s as the inside of a double-quoted value. It
// resolves backslash escapes and reports whether the closing quote was
// reached. The closing quote must end the element.
func scanQuotedBody(s string) (body string, closed bool, err error) {
	var b strings.Builder
	escaped := false

	for i, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			if i != len(s)-1 {
				return "", false, fmt.Errorf("unexpected characters after closing quote")
			}
			return b.String(), true, nil
		default:
			b.WriteRune(r)
		}
	}

	if escaped {
		return "", false, fmt.Errorf("trailing backslash in quoted value")
	}
	return b.String(), false, nil
}
