// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

type tomlEntry struct {
	Index       int         `toml:"index"`
	Enum        string      `toml:"enum"`
	Name        string      `toml:"name"`
	Key         string      `toml:"key"`
	Description string      `toml:"description,omitempty"`
	RotorCount  int         `toml:"rotor_count"`
	Rows        [][]float64 `toml:"rows"`
}

type tomlTable struct {
	Generator  string      `toml:"generator"`
	SixDOF     bool        `toml:"sixdof"`
	Normalized bool        `toml:"normalized"`
	Geometries []tomlEntry `toml:"geometries"`
}

// WriteTOML renders t as a TOML document with one [[geometries]] table per entry.
func WriteTOML(w io.Writer, t *Table) error {
	if t == nil {
		return errors.New("table: WriteTOML: nil table")
	}
	doc := tomlTable{
		Generator:  Generator,
		SixDOF:     t.SixDOF,
		Normalized: t.Normalized,
		Geometries: make([]tomlEntry, len(t.Entries)),
	}
	for i, e := range t.Entries {
		doc.Geometries[i] = tomlEntry(e)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("table: WriteTOML: %w", err)
	}

	return nil
}

// ReadTOML decodes a document produced by WriteTOML.
func ReadTOML(data []byte) (*Table, error) {
	var doc tomlTable
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("table: ReadTOML: %w", err)
	}
	t := &Table{SixDOF: doc.SixDOF, Normalized: doc.Normalized, Entries: make([]Entry, len(doc.Geometries))}
	for i, e := range doc.Geometries {
		t.Entries[i] = Entry(e)
	}

	return t, nil
}
