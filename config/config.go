// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

// Package config provides the aes256 tool configuration.
package config

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/passforge/aes256/core/aes256"
	"github.com/passforge/aes256/core/envelope"
)

const (
	defaultLogLevel = "NOTICE"
	defaultMode     = "ecb"
	defaultEncoding = "hex"
)

// Logging is the aes256 tool logging configuration.
type Logging struct {
	// Disable disables logging entirely.
	Disable bool

	// File specifies the log file, if omitted stderr will be used.
	File string

	// Level specifies the log level.
	Level string
}

func (lCfg *Logging) validate() error {
	lvl := strings.ToUpper(lCfg.Level)
	switch lvl {
	case "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG":
	case "":
		lvl = defaultLogLevel
	default:
		return fmt.Errorf("config: Logging: Level '%v' is invalid", lCfg.Level)
	}
	lCfg.Level = lvl // Force uppercase.
	return nil
}

// Cipher is the message encryption configuration.
type Cipher struct {
	// KeyFile is the path to a file holding the 32 byte key as 64 hex
	// characters.
	KeyFile string

	// Mode is either "ecb", the engine's independent block encoding, or
	// "cbc" for the chained envelope with a random IV.
	Mode string

	// Encoding is the text encoding of ciphertext: "hex", "base64" or "raw".
	Encoding string
}

func (cCfg *Cipher) applyDefaults() {
	if cCfg.Mode == "" {
		cCfg.Mode = defaultMode
	}
	if cCfg.Encoding == "" {
		cCfg.Encoding = defaultEncoding
	}
}

func (cCfg *Cipher) validate() error {
	m, err := envelope.ModeFromString(cCfg.Mode)
	if err != nil {
		return fmt.Errorf("config: Cipher: %w", err)
	}
	cCfg.Mode = m.String()
	cCfg.Encoding = strings.ToLower(cCfg.Encoding)
	switch cCfg.Encoding {
	case "hex", "base64", "raw":
	default:
		return fmt.Errorf("config: Cipher: Encoding '%v' is invalid", cCfg.Encoding)
	}
	return nil
}

// EnvelopeMode returns the parsed Mode. It is only meaningful once the
// Cipher has been validated.
func (cCfg *Cipher) EnvelopeMode() envelope.Mode {
	m, _ := envelope.ModeFromString(cCfg.Mode)
	return m
}

// LoadKey reads and decodes KeyFile.
func (cCfg *Cipher) LoadKey() ([]byte, error) {
	if cCfg.KeyFile == "" {
		return nil, fmt.Errorf("config: Cipher: no KeyFile set")
	}
	b, err := os.ReadFile(cCfg.KeyFile)
	if err != nil {
		return nil, err
	}
	return DecodeKey(string(b))
}

// DecodeKey parses a hex encoded key, ignoring surrounding whitespace.
func DecodeKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("config: malformed key: %v", err)
	}
	if len(key) != aes256.KeySize {
		return nil, fmt.Errorf("config: %w", aes256.KeySizeError(len(key)))
	}
	return key, nil
}

// Config is the top level aes256 tool configuration.
type Config struct {
	Logging *Logging
	Cipher  *Cipher
}

// FixupAndValidate applies defaults to config entries and validates the
// supplied configuration.  Most people should call one of the Load variants
// instead.
func (cfg *Config) FixupAndValidate() error {
	if cfg.Logging == nil {
		cfg.Logging = &Logging{}
	}
	if cfg.Cipher == nil {
		cfg.Cipher = &Cipher{}
	}
	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	cfg.Cipher.applyDefaults()
	return cfg.Cipher.validate()
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	if err := cfg.FixupAndValidate(); err != nil {
		panic("BUG: config: defaults do not validate: " + err.Error())
	}
	return cfg
}

// Write encodes cfg as TOML.
func (cfg *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Load parses and validates the provided buffer b as a config file body and
// returns the Config.
func Load(b []byte) (*Config, error) {
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.FixupAndValidate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file and returns the
// Config.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return Load(b)
}
