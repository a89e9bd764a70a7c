// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	f, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.seed)
	assert.Equal(t, 80, f.iterations)
	assert.Equal(t, 400.0, f.radius)
	assert.Equal(t, 800, f.size)
	assert.Equal(t, "png", f.format)
	assert.False(t, f.isolationBias)
}

func TestParseFlags_Errors(t *testing.T) {
	cases := map[string][]string{
		"negative iterations": {"--iterations=-1"},
		"wheel bounds":        {"--wheel-min=6", "--wheel-max=5"},
		"tiny wheel":          {"--wheel-min=2"},
		"radius":              {"--radius=0"},
		"size":                {"--size=-4"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseFlags(args)
			require.ErrorIs(t, err, ErrBadFlag)
		})
	}

	_, err := parseFlags([]string{"--format=gif"})
	require.Error(t, err)
	_, err = parseFlags([]string{"--no-such-flag"})
	require.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	path, format := flags{out: "a/b.SVG", format: "png"}.outputPath()
	assert.Equal(t, "a/b.SVG", path)
	assert.Equal(t, "svg", format)

	path, format = flags{out: "graph.out", format: "svg"}.outputPath()
	assert.Equal(t, "graph.out", path)
	assert.Equal(t, "svg", format)

	path, format = flags{format: "png"}.outputPath()
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Contains(t, path, "-")
	assert.Equal(t, "png", format)
}

func TestRun_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"g.png", "g.svg"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(dir, name)
			var stdout bytes.Buffer
			err := run([]string{
				"--seed=7", "--iterations=25", "--size=200", "--check", "--no-color", "--out=" + out,
			}, &stdout)
			require.NoError(t, err)

			info, err := os.Stat(out)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
			assert.Contains(t, stdout.String(), "graph: V=")
			assert.Contains(t, stdout.String(), "seed: 7")
			assert.Contains(t, stdout.String(), "wrote: "+out)
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	var stdout bytes.Buffer
	require.ErrorIs(t, run([]string{"--radius=-3"}, &stdout), ErrBadFlag)
	assert.Empty(t, stdout.String())
}
