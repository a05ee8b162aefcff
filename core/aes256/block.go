// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

// state is the 4x4 working matrix in column-major order: byte r+4*c holds
// row r of column c.
type state [BlockSize]byte

func (c *Cipher) encrypt(dst, src []byte) {
	var s state
	copy(s[:], src)

	s.addRoundKey(c.roundKey(0))
	for round := 1; round < Rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(c.roundKey(round))
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(c.roundKey(Rounds))

	copy(dst, s[:])
}

func (c *Cipher) decrypt(dst, src []byte) {
	var s state
	copy(s[:], src)

	s.addRoundKey(c.roundKey(Rounds))
	for round := Rounds - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(c.roundKey(round))
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(c.roundKey(0))

	copy(dst, s[:])
}

func (s *state) addRoundKey(k []byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func (s *state) subBytes() {
	for i, b := range s {
		s[i] = sbox[b]
	}
}

func (s *state) invSubBytes() {
	for i, b := range s {
		s[i] = invSbox[b]
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	t := *s
	for col := 0; col < 4; col++ {
		for row := 1; row < 4; row++ {
			s[row+4*col] = t[row+4*((col+row)%4)]
		}
	}
}

func (s *state) invShiftRows() {
	t := *s
	for col := 0; col < 4; col++ {
		for row := 1; row < 4; row++ {
			s[row+4*((col+row)%4)] = t[row+4*col]
		}
	}
}

func (s *state) mixColumns() {
	for i := 0; i < BlockSize; i += 4 {
		a, b, c, d := s[i], s[i+1], s[i+2], s[i+3]
		s[i] = gfMul(a, 2) ^ gfMul(b, 3) ^ c ^ d
		s[i+1] = a ^ gfMul(b, 2) ^ gfMul(c, 3) ^ d
		s[i+2] = a ^ b ^ gfMul(c, 2) ^ gfMul(d, 3)
		s[i+3] = gfMul(a, 3) ^ b ^ c ^ gfMul(d, 2)
	}
}

func (s *state) invMixColumns() {
	for i := 0; i < BlockSize; i += 4 {
		a, b, c, d := s[i], s[i+1], s[i+2], s[i+3]
		s[i] = gfMul(a, 0x0e) ^ gfMul(b, 0x0b) ^ gfMul(c, 0x0d) ^ gfMul(d, 0x09)
		s[i+1] = gfMul(a, 0x09) ^ gfMul(b, 0x0e) ^ gfMul(c, 0x0b) ^ gfMul(d, 0x0d)
		s[i+2] = gfMul(a, 0x0d) ^ gfMul(b, 0x09) ^ gfMul(c, 0x0e) ^ gfMul(d, 0x0b)
		s[i+3] = gfMul(a, 0x0b) ^ gfMul(b, 0x0d) ^ gfMul(c, 0x09) ^ gfMul(d, 0x0e)
	}
}
