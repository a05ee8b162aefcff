// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package aes256 provides a pure-Go AES-256 block cipher, the
// length-prefixed padding used to block-align messages, and a message
// codec that encrypts each padded block independently.
//
// The message codec performs no chaining and uses no IV: equal plaintext
// blocks under the same key produce equal ciphertext blocks. Callers that
// need semantic security must layer a chaining mode on top (see the
// envelope package).
package aes256

const (
	// KeySize is the AES-256 key size in bytes.
	KeySize = 32

	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// Rounds is the number of AES-256 rounds.
	Rounds = 14

	// ScheduleSize is the size of the expanded key schedule in bytes,
	// one BlockSize round key for the initial AddRoundKey and one per round.
	ScheduleSize = BlockSize * (Rounds + 1)
)

// Cipher is an AES-256 instance bound to a single key.
//
// The round key schedule is derived once by NewCipher and never written
// afterwards, so a Cipher may be shared by concurrent callers.
type Cipher struct {
	schedule [ScheduleSize]byte
}

// NewCipher validates the key and expands it into the round key schedule.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := new(Cipher)
	expandKey(&c.schedule, key)
	return c, nil
}

// Schedule returns a copy of the expanded round key schedule.
func (c *Cipher) Schedule() [ScheduleSize]byte {
	return c.schedule
}

func (c *Cipher) roundKey(round int) []byte {
	return c.schedule[round*BlockSize : (round+1)*BlockSize]
}

// BlockSize returns the cipher's block size, as per cipher.Block.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block of src into dst, as per cipher.Block.
// Like crypto/aes it panics if either buffer is shorter than a block.
// Dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	c.encrypt(dst, src)
}

// Decrypt decrypts the first block of src into dst, as per cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes256: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes256: output not full block")
	}
	c.decrypt(dst, src)
}

// EncryptBlock returns the encryption of exactly one 16 byte block.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, BlockSizeError(len(src))
	}
	dst := make([]byte, BlockSize)
	c.encrypt(dst, src)
	return dst, nil
}

// DecryptBlock returns the decryption of exactly one 16 byte block.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, BlockSizeError(len(src))
	}
	dst := make([]byte, BlockSize)
	c.decrypt(dst, src)
	return dst, nil
}
