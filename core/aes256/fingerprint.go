// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// FingerprintSize is the number of digest bytes kept by Fingerprint.
const FingerprintSize = 8

// Fingerprint returns a short hex identifier for key, suitable for logs.
// It is a truncated BLAKE2b-256 digest and does not reveal the key.
func Fingerprint(key []byte) string {
	sum := blake2b.Sum256(key)
	return hex.EncodeToString(sum[:FingerprintSize])
}
