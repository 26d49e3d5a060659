// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import "strings"

// Expr is the capability a query layer needs to splice a value directly
// into generated SQL text instead of binding it as a parameter.
type Expr interface {
	// SQLLiteral returns the inline literal form of the value.
	SQLLiteral() (string, error)
}

// GroupingSafe marks expressions that never aggregate rows, so they may
// appear in any select position regardless of grouping.
type GroupingSafe interface {
	NeverAggregate()
}

var (
	_ Expr         = Hstore(nil)
	_ GroupingSafe = Hstore(nil)
)

// RenderLiteral renders h as an inline SQL fragment of the form
// 'k1=>v1,k2=>v2'::hstore. Entry order is arbitrary.
//
// Keys and values are spliced verbatim: a quote, comma, or "=>" inside
// an entry produces a malformed fragment, matching the database
// extension's historical literal form. Callers with untrusted content
// must bind the value as a parameter (see Encode) instead. An empty map
// has no literal form and returns ErrEmptyLiteral.
func RenderLiteral(h Hstore) (string, error) {
	if len(h) == 0 {
		return "", ErrEmptyLiteral
	}
	var sb strings.Builder
	sb.Grow(h.encodedSize())
	sb.WriteByte('\'')
	first := true
	for k, v := range h {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(k)
		sb.WriteString("=>")
		sb.WriteString(v)
	}
	sb.WriteString("'::hstore")
	return sb.String(), nil
}

// SQLLiteral implements Expr.
func (h Hstore) SQLLiteral() (string, error) { return RenderLiteral(h) }

// NeverAggregate implements GroupingSafe.
func (Hstore) NeverAggregate() {}
