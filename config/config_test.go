// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/passforge/aes256/core/aes256"
	"github.com/passforge/aes256/core/envelope"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestConfig(t *testing.T) {
	require := require.New(t)

	cfg, err := Load(nil)
	require.NoError(err, "Load() with empty config")
	require.Equal("NOTICE", cfg.Logging.Level)
	require.Equal("ecb", cfg.Cipher.Mode)
	require.Equal("hex", cfg.Cipher.Encoding)

	const basicConfig = `# A basic configuration example.
[Logging]
Level = "debug"
File = "/var/log/aes256.log"

[Cipher]
KeyFile = "/etc/aes256/key"
Mode = "CBC"
Encoding = "base64"
`
	cfg, err = Load([]byte(basicConfig))
	require.NoError(err, "Load() with basic config")
	require.Equal("DEBUG", cfg.Logging.Level)
	require.Equal("/var/log/aes256.log", cfg.Logging.File)
	require.Equal("cbc", cfg.Cipher.Mode)
	require.Equal(envelope.ModeCBC, cfg.Cipher.EnvelopeMode())
	require.Equal("base64", cfg.Cipher.Encoding)
	require.Equal("/etc/aes256/key", cfg.Cipher.KeyFile)
}

func TestConfigInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"bad level":    "[Logging]\nLevel = \"LOUD\"\n",
		"bad mode":     "[Cipher]\nMode = \"ctr\"\n",
		"bad encoding": "[Cipher]\nEncoding = \"base32\"\n",
		"unknown key":  "[Cipher]\nPadding = \"zeros\"\n",
		"not toml":     "[Cipher\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(body))
			require.Error(t, err)
		})
	}
}

func TestConfigMode(t *testing.T) {
	require := require.New(t)

	cfg, err := Load([]byte("[Cipher]\nMode = \"ECB\"\n"))
	require.NoError(err)
	require.Equal("ecb", cfg.Cipher.Mode)
	require.Equal(envelope.ModeECB, cfg.Cipher.EnvelopeMode())

	_, err = Load([]byte("[Cipher]\nMode = \"ofb\"\n"))
	require.ErrorIs(err, envelope.ErrUnknownMode)
}

func TestConfigRoundTrip(t *testing.T) {
	require := require.New(t)

	cfg := Default()
	cfg.Cipher.KeyFile = "key.hex"
	cfg.Cipher.Mode = "cbc"

	var buf bytes.Buffer
	require.NoError(cfg.Write(&buf))

	f := filepath.Join(t.TempDir(), "aes256.toml")
	require.NoError(os.WriteFile(f, buf.Bytes(), 0600))

	loaded, err := LoadFile(f)
	require.NoError(err)
	require.Equal(cfg, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(err, "failed to load config file")
}

func TestLoadKey(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.key")
	require.NoError(os.WriteFile(good, []byte(testKeyHex+"\n"), 0600))
	c := &Cipher{KeyFile: good}
	key, err := c.LoadKey()
	require.NoError(err)
	require.Len(key, aes256.KeySize)
	require.Equal(byte(0x1f), key[31])

	short := filepath.Join(dir, "short.key")
	require.NoError(os.WriteFile(short, []byte(testKeyHex[:62]), 0600))
	c.KeyFile = short
	_, err = c.LoadKey()
	require.ErrorIs(err, aes256.ErrInvalidKeyLength)

	_, err = DecodeKey("zz")
	require.Error(err)

	_, err = (&Cipher{}).LoadKey()
	require.Error(err)
}
