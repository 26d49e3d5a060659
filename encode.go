// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"encoding/binary"
	"io"
)

// AppendBinary implements encoding.BinaryAppender: it appends the
// binary wire form of h to b and returns the extended buffer. The
// container never holds a null value, so every written value length is
// non-negative and encoding cannot fail; the error return satisfies the
// interface.
func (h Hstore) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint32(b, uint32(len(h)))
	for k, v := range h {
		b = appendText(b, k)
		b = appendText(b, v)
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Hstore) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, h.encodedSize()))
}

// Encode writes the binary wire form of h to w. The only failure mode
// is a write error from w, which is returned unchanged.
func Encode(w io.Writer, h Hstore) error {
	buf, _ := h.MarshalBinary()
	_, err := w.Write(buf)
	return err
}

func (h Hstore) encodedSize() int {
	n := 4
	for k, v := range h {
		n += 8 + len(k) + len(v)
	}
	return n
}

// appendText writes a pascal-style big-endian length prefix followed by
// the raw bytes of s.
func appendText(b []byte, s string) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}
