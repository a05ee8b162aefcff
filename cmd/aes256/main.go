// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"github.com/passforge/aes256/common"
)

func main() {
	common.ExecuteWithFang(newRootCommand())
}
