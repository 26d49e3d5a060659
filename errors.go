// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import "errors"

// Decode error kinds. Encoding has no data-dependent failures; the only
// encode-side error is a write failure from the caller's sink, which is
// propagated unchanged.
var (
	// ErrInvalidEntryCount reports a negative declared entry count.
	ErrInvalidEntryCount = errors.New("hstore: invalid entry count")

	// ErrInvalidKeyLength reports a negative key length prefix.
	ErrInvalidKeyLength = errors.New("hstore: invalid key length")

	// ErrTruncatedBuffer reports fewer remaining bytes than a length
	// prefix promised.
	ErrTruncatedBuffer = errors.New("hstore: truncated buffer")

	// ErrInvalidUTF8 reports key or value bytes that are not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("hstore: invalid utf-8")

	// ErrInvalidBufferSize reports unconsumed bytes remaining after the
	// declared entries.
	ErrInvalidBufferSize = errors.New("hstore: invalid buffer size")

	// ErrEmptyLiteral reports an attempt to render an empty map as an
	// inline literal, which has no defined form.
	ErrEmptyLiteral = errors.New("hstore: empty map has no literal form")
)
