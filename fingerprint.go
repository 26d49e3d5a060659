// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

import (
	"github.com/dgryski/go-farm"
)

// Fingerprint returns a 64-bit content fingerprint of h, suitable for
// cheap change detection of stored or cached maps. Each entry is hashed
// over its wire encoding and the per-entry hashes are combined with
// XOR, so the result does not depend on iteration or insertion order.
// It is not a cryptographic digest.
func (h Hstore) Fingerprint() uint64 {
	var fp uint64
	var buf []byte
	for k, v := range h {
		buf = appendText(buf[:0], k)
		buf = appendText(buf, v)
		fp ^= farm.Hash64(buf)
	}
	return fp
}
