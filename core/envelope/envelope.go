// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package envelope wraps aes256 ciphertext in a self-describing CBOR
// container and offers CBC chaining with a random IV as an opt-in
// alternative to the engine's independent block encoding.
package envelope

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/katzenpost/hpqc/rand"

	"github.com/passforge/aes256/core/aes256"
)

// Version is the envelope format version written by Seal.
const Version = 1

// IVSize is the CBC initialization vector size in bytes.
const IVSize = aes256.BlockSize

var (
	// ErrUnsupportedVersion is returned by Open for an unknown format version.
	ErrUnsupportedVersion = errors.New("envelope: unsupported version")

	// ErrUnknownMode is returned for a mode other than ModeECB or ModeCBC.
	ErrUnknownMode = errors.New("envelope: unknown mode")

	// ErrInvalidIV is returned when an envelope's IV does not match its mode.
	ErrInvalidIV = errors.New("envelope: invalid IV")
)

// Mode selects how blocks are combined.
type Mode uint8

const (
	// ModeECB is the engine's native encoding: every block is encrypted
	// independently and no IV is used.
	ModeECB Mode = iota

	// ModeCBC chains each block with the previous ciphertext block,
	// starting from a random IV.
	ModeCBC
)

func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	default:
		return fmt.Sprintf("[unknown mode: %d]", uint8(m))
	}
}

// ModeFromString parses the names returned by Mode.String.
func ModeFromString(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ecb":
		return ModeECB, nil
	case "cbc":
		return ModeCBC, nil
	default:
		return 0, fmt.Errorf("%w: '%v'", ErrUnknownMode, s)
	}
}

// Envelope is the serialized form of a sealed message.
type Envelope struct {
	Version    uint8
	Mode       Mode
	IV         []byte `cbor:",omitempty"`
	Ciphertext []byte
}

// Seal encrypts plaintext with c in the given mode and returns the CBOR
// encoded Envelope.
func Seal(c *aes256.Cipher, mode Mode, plaintext []byte) ([]byte, error) {
	return seal(c, mode, plaintext, rand.Reader)
}

func seal(c *aes256.Cipher, mode Mode, plaintext []byte, entropy io.Reader) ([]byte, error) {
	e := &Envelope{
		Version: Version,
		Mode:    mode,
	}
	switch mode {
	case ModeECB:
		e.Ciphertext = c.EncryptMessage(plaintext)
	case ModeCBC:
		e.IV = make([]byte, IVSize)
		if _, err := io.ReadFull(entropy, e.IV); err != nil {
			return nil, fmt.Errorf("envelope: failed to generate IV: %w", err)
		}
		buf := aes256.Pad(plaintext)
		cipher.NewCBCEncrypter(c, e.IV).CryptBlocks(buf, buf)
		e.Ciphertext = buf
	default:
		return nil, ErrUnknownMode
	}
	return cbor.Marshal(e)
}

// Open decodes a sealed Envelope and decrypts it with c.
func Open(c *aes256.Cipher, blob []byte) ([]byte, error) {
	e := new(Envelope)
	if err := cbor.Unmarshal(blob, e); err != nil {
		return nil, fmt.Errorf("envelope: failed to decode: %w", err)
	}
	if e.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, e.Version)
	}

	switch e.Mode {
	case ModeECB:
		if len(e.IV) != 0 {
			return nil, ErrInvalidIV
		}
		return c.DecryptMessage(e.Ciphertext)
	case ModeCBC:
		if len(e.IV) != IVSize {
			return nil, ErrInvalidIV
		}
		if len(e.Ciphertext) == 0 || len(e.Ciphertext)%aes256.BlockSize != 0 {
			return nil, aes256.BlockSizeError(len(e.Ciphertext))
		}
		buf := make([]byte, len(e.Ciphertext))
		cipher.NewCBCDecrypter(c, e.IV).CryptBlocks(buf, e.Ciphertext)
		return aes256.Unpad(buf)
	default:
		return nil, ErrUnknownMode
	}
}
