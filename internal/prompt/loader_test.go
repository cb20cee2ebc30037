// Copyright 2026 The Promptrun Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/promptrun/internal/runerr"
	"github.com/davetashner/promptrun/internal/testable"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoader_Build(t *testing.T) {
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "tmpl.md", "  Do the thing.\n")
	empty := writeFile(t, dir, "empty.md", "   \n")
	mat := writeFile(t, dir, "mat.md", "fact one\nfact two\n")

	l := NewLoader(nil)
	got, err := l.Build([]Section{Plain(tmpl), Plain(empty), Headed("## Materials", mat)})
	require.NoError(t, err)
	assert.Equal(t, "Do the thing.\n\n## Materials\nfact one\nfact two", got)
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader(nil)
	missing := filepath.Join(t.TempDir(), "nope.md")

	_, err := l.Build([]Section{Plain(missing)})
	require.Error(t, err)
	assert.Equal(t, runerr.KindInputUnreadable, runerr.KindOf(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}

func TestLoader_CachesReads(t *testing.T) {
	reads := 0
	mock := &testable.MockFileSystem{
		ReadFileFn: func(string) ([]byte, error) {
			reads++
			return []byte("shared"), nil
		},
	}
	l := NewLoader(mock)

	require.NoError(t, l.Preload("m.md"))
	_, err := l.Build([]Section{Plain("m.md"), Headed("## Materials", "m.md")})
	require.NoError(t, err)
	assert.Equal(t, 1, reads)
}

func TestLoader_PreloadStopsAtFirstFailure(t *testing.T) {
	var seen []string
	mock := &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			seen = append(seen, name)
			if name == "bad.md" {
				return nil, fs.ErrPermission
			}
			return []byte("ok"), nil
		},
	}
	l := NewLoader(mock)

	err := l.Preload("a.md", "bad.md", "c.md")
	require.Error(t, err)
	assert.Equal(t, runerr.KindInputUnreadable, runerr.KindOf(err))
	assert.Equal(t, []string{"a.md", "bad.md"}, seen)
}
