// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"github.com/passforge/aes256/config"
	"github.com/passforge/aes256/core/aes256"
	"github.com/passforge/aes256/core/envelope"
	"github.com/passforge/aes256/core/log"
)

var errNoKey = errors.New("no key given: use --key or set Cipher.KeyFile")

type session struct {
	cfg     *config.Config
	backend *log.Backend
	log     *logging.Logger
	cipher  *aes256.Cipher
}

func (s *session) Close() error {
	return s.backend.Close()
}

// closeSession closes s, keeping the first error seen.
func closeSession(s *session, err *error) {
	if cerr := s.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close log: %w", cerr)
	}
}

func openSession(opts *Options) (*session, error) {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.LoadFile(opts.ConfigFile); err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	if opts.Mode != "" {
		cfg.Cipher.Mode = opts.Mode
	}
	if opts.Encoding != "" {
		cfg.Cipher.Encoding = opts.Encoding
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}

	var (
		key []byte
		err error
	)
	switch {
	case opts.Key != "":
		key, err = config.DecodeKey(opts.Key)
	case cfg.Cipher.KeyFile != "":
		key, err = cfg.Cipher.LoadKey()
	default:
		err = errNoKey
	}
	if err != nil {
		return nil, err
	}

	c, err := aes256.NewCipher(key)
	if err != nil {
		return nil, err
	}

	backend, err := log.New(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Disable)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:     cfg,
		backend: backend,
		log:     backend.GetLogger("aes256"),
		cipher:  c,
	}
	s.log.Debugf("Using key %s, mode %s, encoding %s", aes256.Fingerprint(key), cfg.Cipher.Mode, cfg.Cipher.Encoding)
	return s, nil
}

type streamFunc func(s *session, r io.Reader, w io.Writer) error

func runStream(cmd *cobra.Command, opts *Options, fn streamFunc) (err error) {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer closeSession(s, &err)

	r := cmd.InOrStdin()
	if opts.In != "" && opts.In != "-" {
		f, err := os.Open(opts.In)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	w := cmd.OutOrStdout()
	if opts.Out == "" || opts.Out == "-" {
		return fn(s, r, w)
	}
	f, err := os.OpenFile(opts.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if err := fn(s, r, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encryptStream(s *session, r io.Reader, w io.Writer) error {
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var ciphertext []byte
	switch s.cfg.Cipher.EnvelopeMode() {
	case envelope.ModeCBC:
		if ciphertext, err = envelope.Seal(s.cipher, envelope.ModeCBC, plaintext); err != nil {
			return err
		}
	default:
		ciphertext = s.cipher.EncryptMessage(plaintext)
	}
	s.log.Infof("Encrypted %d bytes into %d bytes (%s)", len(plaintext), len(ciphertext), s.cfg.Cipher.Mode)

	_, err = w.Write(encode(s.cfg.Cipher.Encoding, ciphertext))
	return err
}

func decryptStream(s *session, r io.Reader, w io.Writer) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	ciphertext, err := decode(s.cfg.Cipher.Encoding, raw)
	if err != nil {
		return err
	}

	var plaintext []byte
	switch s.cfg.Cipher.EnvelopeMode() {
	case envelope.ModeCBC:
		plaintext, err = envelope.Open(s.cipher, ciphertext)
	default:
		plaintext, err = s.cipher.DecryptMessage(ciphertext)
	}
	if err != nil {
		s.log.Errorf("Failed to decrypt %d bytes: %v", len(ciphertext), err)
		return err
	}
	s.log.Infof("Decrypted %d bytes into %d bytes (%s)", len(ciphertext), len(plaintext), s.cfg.Cipher.Mode)

	_, err = w.Write(plaintext)
	return err
}

func encryptBlockHex(c *aes256.Cipher, blockHex string) (string, error) {
	blk, err := hex.DecodeString(strings.TrimSpace(blockHex))
	if err != nil {
		return "", fmt.Errorf("invalid argument: block is not hex: %v", err)
	}
	ct, err := c.EncryptBlock(blk)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(ct), nil
}

func encode(encoding string, b []byte) []byte {
	switch encoding {
	case "raw":
		return b
	case "base64":
		return []byte(base64.StdEncoding.EncodeToString(b) + "\n")
	default:
		return []byte(hex.EncodeToString(b) + "\n")
	}
}

func decode(encoding string, b []byte) ([]byte, error) {
	switch encoding {
	case "raw":
		return b, nil
	case "base64":
		out, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(b)))
		if err != nil {
			return nil, fmt.Errorf("malformed base64 input: %v", err)
		}
		return out, nil
	default:
		out, err := hex.DecodeString(strings.TrimSpace(string(b)))
		if err != nil {
			return nil, fmt.Errorf("malformed hex input: %v", err)
		}
		return out, nil
	}
}
