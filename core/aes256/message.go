// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

// EncryptMessage pads plaintext and encrypts every block independently
// with the same round keys. The result is always a multiple of BlockSize
// and at least one block long.
func (c *Cipher) EncryptMessage(plaintext []byte) []byte {
	buf := Pad(plaintext)
	for off := 0; off < len(buf); off += BlockSize {
		blk := buf[off : off+BlockSize]
		c.encrypt(blk, blk)
	}
	return buf
}

// DecryptMessage reverses EncryptMessage. The ciphertext must be a non-empty
// whole number of blocks and must carry valid padding once decrypted.
func (c *Cipher) DecryptMessage(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, BlockSizeError(len(ciphertext))
	}
	buf := make([]byte, len(ciphertext))
	for off := 0; off < len(buf); off += BlockSize {
		c.decrypt(buf[off:off+BlockSize], ciphertext[off:off+BlockSize])
	}
	return Unpad(buf)
}
