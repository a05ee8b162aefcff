// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package aes256

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLength(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n <= 4*BlockSize; n++ {
		data := bytes.Repeat([]byte{0xaa}, n)
		padded := Pad(data)

		want := n + BlockSize - n%BlockSize
		assert.Equal(want, len(padded), "input length %d", n)
		assert.Zero(len(padded)%BlockSize)

		added := len(padded) - n
		assert.True(added >= 1 && added <= BlockSize)
		for _, b := range padded[n:] {
			assert.Equal(byte(added), b)
		}
		assert.Equal(data, padded[:n])
	}

	assert.Equal(bytes.Repeat([]byte{BlockSize}, BlockSize), Pad(nil), "empty input gains a full block")
}

func TestPadDoesNotAlias(t *testing.T) {
	data := make([]byte, 5, 64)
	padded := Pad(data)
	padded[0] = 0xff
	require.Equal(t, byte(0), data[0])
	require.Equal(t, byte(0), data[:cap(data)][5], "Pad wrote into the caller's spare capacity")
}

func TestPadUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 100; n++ {
		data := make([]byte, n)
		_, err := rand.Read(data)
		require.NoError(t, err)

		out, err := Unpad(Pad(data))
		require.NoError(t, err, "length %d", n)
		require.True(t, bytes.Equal(data, out), "length %d", n)
	}
}

func TestUnpadInvalid(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"inconsistent trailer", []byte{0x41, 0x41, 0x41, 0x41, 0x05, 0x05, 0x05, 0x04}},
		{"empty", []byte{}},
		{"nil", nil},
		{"zero pad byte", append(bytes.Repeat([]byte{0x41}, 15), 0x00)},
		{"pad byte exceeds block", bytes.Repeat([]byte{0x11}, 32)},
		{"pad byte exceeds data", []byte{0x03, 0x03}},
		{"one wrong byte", append(bytes.Repeat([]byte{0x10}, 15), 0x0f)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Unpad(tc.data)
			require.ErrorIs(t, err, ErrInvalidPadding)
			require.Nil(t, out)
		})
	}
}

func TestUnpadValid(t *testing.T) {
	assert := assert.New(t)

	out, err := Unpad([]byte{0x41, 0x42, 0x02, 0x02})
	assert.NoError(err)
	assert.Equal([]byte{0x41, 0x42}, out)

	out, err = Unpad(bytes.Repeat([]byte{BlockSize}, BlockSize))
	assert.NoError(err)
	assert.Empty(out)
}
