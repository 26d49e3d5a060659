// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package pgxhstore registers the hstore binary codec with a pgx v5
// type map, letting hstore.Hstore and map[string]string be used
// directly as query arguments and scan targets.
//
// hstore is an extension type, so its OID differs between databases.
// Look it up once per connection:
//
//	SELECT oid FROM pg_type WHERE typname = 'hstore'
//
// and pass it to Register, typically from an AfterConnect hook.
package pgxhstore

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgkit/hstore"
)

// Register installs Codec on tm under the given type OID.
func Register(tm *pgtype.Map, oid uint32) {
	tm.RegisterType(&pgtype.Type{Name: "hstore", OID: oid, Codec: Codec{}})
}

// Codec implements pgtype.Codec for the hstore extension type. Only the
// binary wire format is supported.
type Codec struct{}

// FormatSupported implements pgtype.Codec.
func (Codec) FormatSupported(format int16) bool {
	return format == pgtype.BinaryFormatCode
}

// PreferredFormat implements pgtype.Codec.
func (Codec) PreferredFormat() int16 { return pgtype.BinaryFormatCode }

// PlanEncode implements pgtype.Codec.
func (Codec) PlanEncode(tm *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	if format != pgtype.BinaryFormatCode {
		return nil
	}
	switch value.(type) {
	case hstore.Hstore, map[string]string:
		return encodePlan{}
	}
	return nil
}

type encodePlan struct{}

func (encodePlan) Encode(value any, buf []byte) ([]byte, error) {
	switch v := value.(type) {
	case hstore.Hstore:
		return v.AppendBinary(buf)
	case map[string]string:
		return hstore.Hstore(v).AppendBinary(buf)
	}
	return nil, fmt.Errorf("pgxhstore: cannot encode %T as hstore", value)
}

// PlanScan implements pgtype.Codec.
func (Codec) PlanScan(tm *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	if format != pgtype.BinaryFormatCode {
		return nil
	}
	switch target.(type) {
	case *hstore.Hstore, *map[string]string:
		return scanPlan{}
	}
	return nil
}

type scanPlan struct{}

func (scanPlan) Scan(src []byte, target any) error {
	if src == nil {
		switch t := target.(type) {
		case *hstore.Hstore:
			*t = nil
			return nil
		case *map[string]string:
			*t = nil
			return nil
		}
		return fmt.Errorf("pgxhstore: cannot scan NULL into %T", target)
	}
	h, err := hstore.Decode(src)
	if err != nil {
		return err
	}
	switch t := target.(type) {
	case *hstore.Hstore:
		*t = h
	case *map[string]string:
		*t = map[string]string(h)
	default:
		return fmt.Errorf("pgxhstore: cannot scan into %T", target)
	}
	return nil
}

// DecodeDatabaseSQLValue implements pgtype.Codec. The raw wire bytes
// are returned as the driver value.
func (Codec) DecodeDatabaseSQLValue(tm *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	buf := make([]byte, len(src))
	copy(buf, src)
	return buf, nil
}

// DecodeValue implements pgtype.Codec.
func (Codec) DecodeValue(tm *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	if format != pgtype.BinaryFormatCode {
		return nil, fmt.Errorf("pgxhstore: unsupported format code %d", format)
	}
	return hstore.Decode(src)
}
