// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"fmt"
	"testing"
)

func BenchmarkExpandKey(b *testing.B) {
	key := make([]byte, KeySize)
	var sched [ScheduleSize]byte

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		expandKey(&sched, key)
	}
}

func BenchmarkEncryptBlock(b *testing.B) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		b.Fatal(err)
	}
	var blk [BlockSize]byte

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.Encrypt(blk[:], blk[:])
	}
}

func BenchmarkEncryptMessage(b *testing.B) {
	c, err := NewCipher(make([]byte, KeySize))
	if err != nil {
		b.Fatal(err)
	}
	for _, n := range []int{16, 1024, 64 * 1024} {
		msg := make([]byte, n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = c.EncryptMessage(msg)
			}
		})
	}
}
