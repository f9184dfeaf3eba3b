package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
)

// The JSON course format:
//
//	{
//	  "width": 4,
//	  "height": 2,
//	  "cells": [
//	    [1, 1, [2, 0], 1],
//	    [1, 0, 3, 1]
//	  ]
//	}
//
// cells is row-major (rows are Z). Each cell is either a bare type code or
// a [type, rotation] pair; rotation is only kept for wedges. Type codes:
// 0 empty, 1 cube, 2 wedge, 3 goal, 4 checkpoint.
//
// Parsing is strict: missing fields, unknown fields, mis-sized rows, and
// out-of-range codes are errors. The physics core assumes every grid it
// sees is valid, so validation lives entirely here.

type courseFile struct {
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Cells  [][]json.RawMessage `json:"cells"`
}

// LoadJSON reads and parses a JSON course from fsys.
func LoadJSON(fsys fs.FS, path string) (*Grid, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read course %s: %w", path, err)
	}
	g, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse course %s: %w", path, err)
	}
	return g, nil
}

// ParseJSON parses a JSON course document.
func ParseJSON(data []byte) (*Grid, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cf courseFile
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("level: decode course: %w", err)
	}
	if cf.Width <= 0 || cf.Height <= 0 {
		return nil, fmt.Errorf("level: invalid course size %dx%d", cf.Width, cf.Height)
	}
	if len(cf.Cells) != cf.Height {
		return nil, fmt.Errorf("level: %d cell rows, want %d", len(cf.Cells), cf.Height)
	}

	tiles := make([]Tile, 0, cf.Width*cf.Height)
	for z, row := range cf.Cells {
		if len(row) != cf.Width {
			return nil, fmt.Errorf("level: row %d has %d cells, want %d", z, len(row), cf.Width)
		}
		for x, raw := range row {
			t, err := parseCell(raw)
			if err != nil {
				return nil, fmt.Errorf("level: cell (%d,%d): %w", x, z, err)
			}
			tiles = append(tiles, t)
		}
	}
	return New(cf.Width, cf.Height, tiles)
}

// parseCell accepts either a bare type code or a [type, rotation] pair.
func parseCell(raw json.RawMessage) (Tile, error) {
	var code int
	if err := json.Unmarshal(raw, &code); err == nil {
		return tileFromCodes(code, 0)
	}

	var pair []int
	if err := json.Unmarshal(raw, &pair); err != nil {
		return Tile{}, fmt.Errorf("want a type code or [type, rotation] pair, got %s", raw)
	}
	if len(pair) != 2 {
		return Tile{}, fmt.Errorf("pair has %d elements, want 2", len(pair))
	}
	return tileFromCodes(pair[0], pair[1])
}

func tileFromCodes(code, rot int) (Tile, error) {
	if code < 0 || code > int(Checkpoint) {
		return Tile{}, fmt.Errorf("unknown tile type %d", code)
	}
	if rot < 0 || rot > 3 {
		return Tile{}, fmt.Errorf("rotation %d out of range [0,3]", rot)
	}
	t := Tile{Kind: Kind(code)}
	if t.Kind == Wedge {
		t.Rot = Rotation(rot)
	}
	return t, nil
}
