// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package common provides shared utilities for the aes256 CLI tools.
package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// usageErrors are substrings of errors caused by how the tool was invoked
// rather than by the data it was given.
var usageErrors = []string{
	"flag needs an argument:",
	"unknown flag:",
	"unknown shorthand flag:",
	"unknown command",
	"invalid argument",
	"required flag",
	"accepts",
	"arg(s), received",
	"failed to load config file",
	"no key given",
}

// ExecuteWithFang executes a cobra command using fang and exits non-zero
// on failure.
func ExecuteWithFang(cmd *cobra.Command) {
	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(versioninfo.Short()),
		fang.WithErrorHandler(ErrorHandlerWithUsage(cmd)),
	); err != nil {
		os.Exit(1)
	}
}

// ErrorHandlerWithUsage returns a fang error handler that prints the error
// and, for invocation mistakes, the command's usage.
func ErrorHandlerWithUsage(cmd *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
		_, _ = fmt.Fprintln(w, styles.ErrorText.Render(err.Error()+"."))
		_, _ = fmt.Fprintln(w)

		if IsUsageError(err) {
			if helpFunc := cmd.HelpFunc(); helpFunc != nil {
				cmd.SetOut(colorprofile.NewWriter(w, os.Environ()))
				helpFunc(cmd, []string{})
			}
			return
		}

		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		))
		_, _ = fmt.Fprintln(w)
	}
}

// IsUsageError reports whether err should be followed by usage help.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	for _, prefix := range usageErrors {
		if strings.Contains(s, prefix) {
			return true
		}
	}
	return false
}
