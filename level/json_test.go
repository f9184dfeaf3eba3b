package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSONScalarAndPairCells(t *testing.T) {
	g, err := ParseJSON([]byte(`{
		"width": 3,
		"height": 2,
		"cells": [
			[1, [2, 1], 0],
			[3, [4, 0], [1, 0]]
		]
	}`))
	require.NoError(t, err)

	require.Equal(t, Tile{Kind: Cube}, g.At(0, 0))
	require.Equal(t, Tile{Kind: Wedge, Rot: RotMinusX}, g.At(1, 0))
	require.Equal(t, Tile{Kind: Empty}, g.At(2, 0))
	require.Equal(t, Tile{Kind: Goal}, g.At(0, 1))
	require.Equal(t, Tile{Kind: Checkpoint}, g.At(1, 1))
	require.Equal(t, Tile{Kind: Cube}, g.At(2, 1))
}

func TestParseJSONRotationOnlyKeptForWedges(t *testing.T) {
	g, err := ParseJSON([]byte(`{"width":1,"height":1,"cells":[[[1, 3]]]}`))
	require.NoError(t, err)
	require.Equal(t, Tile{Kind: Cube, Rot: RotPlusX}, g.At(0, 0))
}

func TestParseJSONRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"truncated":       `{"width": 2, "height": 2, "cells": [[1,1]`,
		"missing size":    `{"cells": [[1]]}`,
		"short row":       `{"width":2,"height":1,"cells":[[1]]}`,
		"missing row":     `{"width":1,"height":2,"cells":[[1]]}`,
		"bad type code":   `{"width":1,"height":1,"cells":[[9]]}`,
		"bad rotation":    `{"width":1,"height":1,"cells":[[[2, 7]]]}`,
		"long pair":       `{"width":1,"height":1,"cells":[[[2, 1, 0]]]}`,
		"non-numeric":     `{"width":1,"height":1,"cells":[["cube"]]}`,
		"unknown fields":  `{"width":1,"height":1,"theme":"lava","cells":[[1]]}`,
		"negative width":  `{"width":-3,"height":1,"cells":[[1]]}`,
	}
	for name, doc := range cases {
		_, err := ParseJSON([]byte(doc))
		require.Error(t, err, "case %q", name)
	}
}

func TestLoadJSONFromDir(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "course.json"),
		[]byte(`{"width":2,"height":1,"cells":[[1, 3]]}`), 0o644)
	require.NoError(t, err)

	g, err := LoadJSON(os.DirFS(dir), "course.json")
	require.NoError(t, err)
	require.Equal(t, Goal, g.At(1, 0).Kind)

	_, err = LoadJSON(os.DirFS(dir), "missing.json")
	require.Error(t, err)
}
