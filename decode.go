// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Decode parses one binary hstore value from buf. The buffer must hold
// exactly one value: trailing bytes after the declared entries are an
// error, as is every structural violation listed on the Err*
// sentinels.
//
// Wire entries with a negative value length carry SQL NULL; they are
// dropped rather than inserted. When the same key appears more than
// once, the last non-null occurrence wins.
func Decode(buf []byte) (Hstore, error) {
	count, rest, err := readInt32(buf)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrInvalidEntryCount
	}

	// Every entry carries at least 8 bytes of length prefixes, which
	// bounds the size hint a hostile count can inflate.
	h := make(Hstore, min(int(count), len(rest)/8))
	for i := int32(0); i < count; i++ {
		var keyLen int32
		keyLen, rest, err = readInt32(rest)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if keyLen < 0 {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidKeyLength)
		}
		var key string
		key, rest, err = readText(rest, int(keyLen))
		if err != nil {
			return nil, fmt.Errorf("entry %d key: %w", i, err)
		}

		var valueLen int32
		valueLen, rest, err = readInt32(rest)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if valueLen < 0 {
			// SQL NULL: no value bytes follow, and the entry is not
			// represented in the container.
			continue
		}
		var value string
		value, rest, err = readText(rest, int(valueLen))
		if err != nil {
			return nil, fmt.Errorf("entry %d value: %w", i, err)
		}
		h[key] = value
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidBufferSize, len(rest))
	}
	return h, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Hstore) UnmarshalBinary(data []byte) error {
	m, err := Decode(data)
	if err != nil {
		return err
	}
	*h = m
	return nil
}

func readInt32(buf []byte) (int32, []byte, error) {
	if len(buf) < 4 {
		return 0, buf, ErrTruncatedBuffer
	}
	return int32(binary.BigEndian.Uint32(buf[:4])), buf[4:], nil
}

func readText(buf []byte, n int) (string, []byte, error) {
	if len(buf) < n {
		return "", buf, ErrTruncatedBuffer
	}
	raw := buf[:n]
	if !utf8.Valid(raw) {
		return "", buf, ErrInvalidUTF8
	}
	return string(raw), buf[n:], nil
}
