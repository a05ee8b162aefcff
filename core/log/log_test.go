// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	for _, l := range []string{"error", "WARNING", "notice", "INFO", "debug"} {
		_, err := levelFromString(l)
		assert.NoError(t, err, l)
	}
	_, err := levelFromString("LOUD")
	assert.Error(t, err)

	_, err = New("", "LOUD", false)
	assert.Error(t, err)
}

func TestBackendWritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	b, err := newWithWriter("", "INFO", false, &buf)
	require.NoError(t, err)

	l := b.GetLogger("logtest")
	l.Debug("hidden")
	l.Info("visible")

	out := buf.String()
	assert.Contains(t, out, "logtest: visible")
	assert.NotContains(t, out, "hidden")
	assert.NoError(t, b.Close())
}

func TestBackendDisabled(t *testing.T) {
	var buf bytes.Buffer
	b, err := newWithWriter("", "DEBUG", true, &buf)
	require.NoError(t, err)

	b.GetLogger("logtest-disabled").Error("dropped")
	assert.Empty(t, buf.String())
}

func TestBackendFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "aes256.log")
	b, err := New(f, "NOTICE", false)
	require.NoError(t, err)

	b.GetLogger("logtest-file").Notice("to file")
	require.NoError(t, b.Close())

	raw, err := os.ReadFile(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "NOTI logtest-file: to file")
}
