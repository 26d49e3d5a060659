// Copyright 2026 The hstore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package hstore

// RoutineKind classifies how a database-side routine is written in
// generated SQL.
type RoutineKind int

const (
	// Function is an ordinary named call: name(args...).
	Function RoutineKind = iota
	// InfixOperator is written between its two arguments.
	InfixOperator
	// PrefixOperator is written before its single argument.
	PrefixOperator
)

// Routine describes one database-side hstore function or operator. The
// query layer binds generated SQL against these names and signatures;
// the logic lives entirely in the database's hstore extension.
type Routine struct {
	Name   string // SQL function name or operator symbol
	Kind   RoutineKind
	Args   []string // SQL argument type names
	Result string   // SQL result type name
}

// Routines lists the hstore extension's function and operator surface.
// Composite-record routines (hstore(record), populate_record, #=, %#),
// the two-dimensional array forms, and the set-returning variants
// (skeys, svals, each) are intentionally absent.
var Routines = []Routine{
	{Name: "hstore", Kind: Function, Args: []string{"text[]"}, Result: "hstore"},
	{Name: "hstore", Kind: Function, Args: []string{"text[]", "text[]"}, Result: "hstore"},
	{Name: "hstore", Kind: Function, Args: []string{"text", "text"}, Result: "hstore"},
	{Name: "hstore_to_array", Kind: Function, Args: []string{"hstore"}, Result: "text[]"},
	{Name: "akeys", Kind: Function, Args: []string{"hstore"}, Result: "text[]"},
	{Name: "avals", Kind: Function, Args: []string{"hstore"}, Result: "text[]"},
	{Name: "slice", Kind: Function, Args: []string{"hstore", "text[]"}, Result: "hstore"},
	{Name: "exist", Kind: Function, Args: []string{"hstore", "text"}, Result: "boolean"},
	{Name: "defined", Kind: Function, Args: []string{"hstore", "text"}, Result: "boolean"},
	{Name: "delete", Kind: Function, Args: []string{"hstore", "text"}, Result: "hstore"},
	{Name: "delete", Kind: Function, Args: []string{"hstore", "text[]"}, Result: "hstore"},
	{Name: "delete", Kind: Function, Args: []string{"hstore", "hstore"}, Result: "hstore"},

	{Name: "->", Kind: InfixOperator, Args: []string{"hstore", "text"}, Result: "text"},
	{Name: "->", Kind: InfixOperator, Args: []string{"hstore", "text[]"}, Result: "text[]"},
	{Name: "||", Kind: InfixOperator, Args: []string{"hstore", "hstore"}, Result: "hstore"},
	{Name: "?", Kind: InfixOperator, Args: []string{"hstore", "text"}, Result: "boolean"},
	{Name: "?&", Kind: InfixOperator, Args: []string{"hstore", "text[]"}, Result: "boolean"},
	{Name: "?|", Kind: InfixOperator, Args: []string{"hstore", "text[]"}, Result: "boolean"},
	{Name: "@>", Kind: InfixOperator, Args: []string{"hstore", "hstore"}, Result: "boolean"},
	{Name: "<@", Kind: InfixOperator, Args: []string{"hstore", "hstore"}, Result: "boolean"},
	{Name: "-", Kind: InfixOperator, Args: []string{"hstore", "text"}, Result: "hstore"},
	{Name: "-", Kind: InfixOperator, Args: []string{"hstore", "text[]"}, Result: "hstore"},
	{Name: "-", Kind: InfixOperator, Args: []string{"hstore", "hstore"}, Result: "hstore"},
	{Name: "%%", Kind: PrefixOperator, Args: []string{"hstore"}, Result: "text[]"},
}

// LookupRoutine returns the routines registered under name. Functions
// and operators are overloaded across argument types, so the result may
// hold several entries.
func LookupRoutine(name string) []Routine {
	var out []Routine
	for _, r := range Routines {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out
}
