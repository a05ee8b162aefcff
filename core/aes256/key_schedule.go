// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

const (
	wordSize  = 4
	keyWords  = KeySize / wordSize
	totalWord = ScheduleSize / wordSize
)

// expandKey fills w with the 60 word AES-256 schedule derived from key.
// The first keyWords words are the key itself.
func expandKey(w *[ScheduleSize]byte, key []byte) {
	copy(w[:KeySize], key)

	var temp [wordSize]byte
	for i := keyWords; i < totalWord; i++ {
		copy(temp[:], w[(i-1)*wordSize:i*wordSize])
		switch i % keyWords {
		case 0:
			rotWord(&temp)
			subWord(&temp)
			temp[0] ^= rcon[i/keyWords]
		case 4:
			subWord(&temp)
		}
		prev := w[(i-keyWords)*wordSize:]
		for j := 0; j < wordSize; j++ {
			w[i*wordSize+j] = prev[j] ^ temp[j]
		}
	}
}

func rotWord(word *[wordSize]byte) {
	word[0], word[1], word[2], word[3] = word[1], word[2], word[3], word[0]
}

func subWord(word *[wordSize]byte) {
	for i, b := range word {
		word[i] = sbox[b]
	}
}
