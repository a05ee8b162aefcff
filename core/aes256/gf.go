// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

// reductionPoly is x^8 + x^4 + x^3 + x + 1 with the x^8 term dropped.
const reductionPoly = 0x1b

// gfMul multiplies a and b in GF(2^8) modulo the AES polynomial.
func gfMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= reductionPoly
		}
		b >>= 1
	}
	return p
}
