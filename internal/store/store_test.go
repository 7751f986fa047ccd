// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("token")
	assert.False(t, ok, "empty store reported a value")

	require.NoError(t, s.Set("token", "tok-1"))
	got, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, s.Set("token", "tok-2"))
	got, _ = s.Get("token")
	assert.Equal(t, "tok-2", got, "Set must overwrite")

	require.NoError(t, s.Delete("token"))
	_, ok = s.Get("token")
	assert.False(t, ok, "value survived Delete")
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("token", "tok-1"))
	require.NoError(t, s.Set("last_activity", "1739700000000"))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.Get("token")
	assert.True(t, ok, "token lost across reopen")
	assert.Equal(t, "tok-1", got)
	got, ok = s.Get("last_activity")
	assert.True(t, ok)
	assert.Equal(t, "1739700000000", got)
}

func TestBoltEmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	// An empty string is a real value, distinct from absence.
	require.NoError(t, s.Set("token", ""))
	got, ok := s.Get("token")
	assert.True(t, ok, "empty value read back as absent")
	assert.Equal(t, "", got)
}

func TestBoltDeleteAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.Delete("never-set"))
}

func TestBoltCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, path, s.Path())
}

func TestMemory(t *testing.T) {
	s := NewMemory()

	_, ok := s.Get("token")
	assert.False(t, ok)

	require.NoError(t, s.Set("token", "tok-1"))
	got, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, s.Delete("token"))
	_, ok = s.Get("token")
	assert.False(t, ok)

	assert.NoError(t, s.Delete("token"), "double delete must be harmless")
}
