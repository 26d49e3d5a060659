// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderLiteralSingleEntry(t *testing.T) {
	got, err := RenderLiteral(Hstore{"a": "b"})
	require.NoError(t, err)
	require.Equal(t, "'a=>b'::hstore", got)
}

func TestRenderLiteralMultipleEntries(t *testing.T) {
	got, err := RenderLiteral(Hstore{"a": "1", "b": "2", "c": "3"})
	require.NoError(t, err)

	// entry order is arbitrary, so compare the sorted entry list
	require.True(t, strings.HasPrefix(got, "'"))
	require.True(t, strings.HasSuffix(got, "'::hstore"))
	inner := strings.TrimSuffix(strings.TrimPrefix(got, "'"), "'::hstore")
	entries := strings.Split(inner, ",")
	sort.Strings(entries)
	require.Equal(t, []string{"a=>1", "b=>2", "c=>3"}, entries)
}

func TestRenderLiteralEmptyMap(t *testing.T) {
	_, err := RenderLiteral(Hstore{})
	require.ErrorIs(t, err, ErrEmptyLiteral)
}

func TestRenderLiteralDoesNotEscape(t *testing.T) {
	// documented limitation: special characters pass through verbatim
	got, err := RenderLiteral(Hstore{"a,b": "c'd"})
	require.NoError(t, err)
	require.Equal(t, "'a,b=>c'd'::hstore", got)
}

func TestSQLLiteralMatchesRenderLiteral(t *testing.T) {
	h := Hstore{"a": "b"}
	var e Expr = h
	got, err := e.SQLLiteral()
	require.NoError(t, err)
	want, err := RenderLiteral(h)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
