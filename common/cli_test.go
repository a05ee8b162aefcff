// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package common

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/passforge/aes256/core/aes256"
)

func TestIsUsageError(t *testing.T) {
	assert := assert.New(t)

	assert.False(IsUsageError(nil))
	assert.True(IsUsageError(errors.New("unknown flag: --frobnicate")))
	assert.True(IsUsageError(errors.New(`required flag(s) "in" not set`)))
	assert.True(IsUsageError(fmt.Errorf("failed to load config file: %w", errors.New("no such file"))))
	assert.False(IsUsageError(aes256.ErrInvalidPadding))
	assert.False(IsUsageError(aes256.KeySizeError(31)))
}

func TestErrorHandlerWithUsage(t *testing.T) {
	assert := assert.New(t)

	newCmd := func() *cobra.Command {
		return &cobra.Command{
			Use:   "tool",
			Short: "a tool for testing",
			Run:   func(*cobra.Command, []string) {},
		}
	}

	var buf bytes.Buffer
	ErrorHandlerWithUsage(newCmd())(&buf, fang.Styles{}, errors.New("unknown flag: --frobnicate"))
	assert.Contains(buf.String(), "unknown flag: --frobnicate")
	assert.Contains(buf.String(), "Usage:", "usage errors must print help to the handler's writer")

	buf.Reset()
	ErrorHandlerWithUsage(newCmd())(&buf, fang.Styles{}, aes256.ErrInvalidPadding)
	assert.Contains(buf.String(), "invalid padding")
	assert.NotContains(buf.String(), "Usage:")
	assert.Contains(buf.String(), "--help")
}
