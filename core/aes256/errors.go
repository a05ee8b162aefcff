// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidKeyLength is the error returned when a key is not KeySize bytes.
	ErrInvalidKeyLength = errors.New("aes256: invalid key length")

	// ErrInvalidBlockLength is the error returned when a block is not
	// BlockSize bytes, or a ciphertext is not a whole number of blocks.
	ErrInvalidBlockLength = errors.New("aes256: invalid block length")

	// ErrInvalidPadding is the error returned when the padding trailer of a
	// buffer is inconsistent.
	ErrInvalidPadding = errors.New("aes256: invalid padding")
)

// KeySizeError reports the length of a rejected key.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes256: invalid key length " + strconv.Itoa(int(k)) + ", expected " + strconv.Itoa(KeySize)
}

// Unwrap allows errors.Is(err, ErrInvalidKeyLength).
func (k KeySizeError) Unwrap() error {
	return ErrInvalidKeyLength
}

// BlockSizeError reports the length of a rejected block or ciphertext.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes256: invalid block length " + strconv.Itoa(int(b))
}

// Unwrap allows errors.Is(err, ErrInvalidBlockLength).
func (b BlockSizeError) Unwrap() error {
	return ErrInvalidBlockLength
}
