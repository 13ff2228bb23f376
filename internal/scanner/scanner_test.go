//go:build unit

package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condaops/envsync/internal/scanner"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestPythonScannerScan(t *testing.T) {
	t.Parallel()

	t.Run("should extract plain and dotted imports", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
import numpy
import matplotlib.pyplot
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"matplotlib", "numpy"}, imports)
	})

	t.Run("should extract aliased and comma-separated imports", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
import requests, attrs
import numpy, pandas as pd
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"attrs", "numpy", "pandas", "requests"}, imports)
	})

	t.Run("should extract the module from from-imports", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
from sklearn.ensemble import RandomForestClassifier
from torch import nn
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"sklearn", "torch"}, imports)
	})

	t.Run("should ignore relative imports", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
from . import helpers
from .utils import load
from ..common import shared
import numpy
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"numpy"}, imports)
	})

	t.Run("should drop standard-library modules", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
import os
import sys
from pathlib import Path
import requests
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"requests"}, imports)
	})

	t.Run("should drop excluded local packages", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
import my_helpers
import numpy
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, []string{"my_helpers"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"numpy"}, imports)
	})

	t.Run("should collect imports inside functions and conditionals", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", `
def lazy():
    import torch
    return torch

try:
    import ujson
except ImportError:
    import json
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"torch", "ujson"}, imports)
	})

	t.Run("should walk nested directories and deduplicate", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "a.py", "import numpy\n")
		writeSource(t, dir, filepath.Join("sub", "b.py"), "import numpy\nimport scipy\n")
		writeSource(t, dir, "notes.txt", "import fake\n")

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"numpy", "scipy"}, imports)
	})

	t.Run("should accept a single file as a scan path", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "only.py", "import httpx\n")

		// when
		imports, err := scanner.NewPythonScanner().Scan(
			[]string{filepath.Join(dir, "only.py")}, nil,
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"httpx"}, imports)
	})

	t.Run("should skip missing paths without failing", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", "import numpy\n")

		// when
		imports, err := scanner.NewPythonScanner().Scan(
			[]string{filepath.Join(dir, "does-not-exist"), dir}, nil,
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"numpy"}, imports)
	})

	t.Run("should still find imports in files with syntax errors", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "broken.py", `
import numpy
def broken(:
`)

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"numpy"}, imports)
	})

	t.Run("should return empty for a tree with no imports", func(t *testing.T) {
		// given
		dir := t.TempDir()
		writeSource(t, dir, "main.py", "print('hello')\n")

		// when
		imports, err := scanner.NewPythonScanner().Scan([]string{dir}, nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, imports)
	})
}
