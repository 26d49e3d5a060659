// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package hstore implements the PostgreSQL hstore extension type: an
// in-memory string-to-string map, the binary wire codec used to move it
// to and from the database, and the inline literal form used when a
// value must appear directly in generated SQL.
//
// A binary hstore value looks like:
//
//	 0    1    2    3    4    5    6    7
//	+----+----+----+----+----+----+----+----+
//	| entry count       | key length        |
//	+----+----+----+----+----+----+----+----+
//	| key bytes...                          |
//	+----+----+----+----+----+----+----+----+
//	| value length      | value bytes...    |
//	+----+----+----+----+----+----+----+----+
//
// All integers are big-endian signed 32-bit. The key length / key /
// value length / value group repeats once per declared entry, and the
// buffer must end exactly where the last entry does. A negative value
// length marks a SQL NULL value: no value bytes follow, and the entry
// is dropped on decode, so the container never holds a null.
package hstore
