// SPDX-FileCopyrightText: Copyright (C) 2025  David Stainton
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/katzenpost/hpqc/rand"
	"github.com/spf13/cobra"

	"github.com/passforge/aes256/config"
	"github.com/passforge/aes256/core/aes256"
)

// Options holds the command line configuration shared by every subcommand.
type Options struct {
	ConfigFile string
	Key        string
	Mode       string
	Encoding   string
	LogLevel   string
	In         string
	Out        string
}

func newRootCommand() *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "aes256",
		Short: "AES-256 message encryption tool",
		Long: `Encrypt and decrypt messages with a pure-Go AES-256 engine.

In "ecb" mode every 16 byte block is encrypted independently with no IV,
so equal plaintext blocks give equal ciphertext blocks. Use "cbc" mode to
seal messages in an envelope chained from a random IV.`,
		Example: `  # Write a config and a fresh key
  aes256 genconfig --file aes256.toml --key-out aes256.key

  # Encrypt stdin to hex on stdout
  echo -n "hunter2" | aes256 encrypt -c aes256.toml

  # Check the FIPS-197 known answer
  aes256 encryptblock -k 000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f 00112233445566778899aabbccddeeff`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "configuration file")
	cmd.PersistentFlags().StringVarP(&opts.Key, "key", "k", "", "key as 64 hex characters, overrides Cipher.KeyFile")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")

	cmd.AddCommand(
		newEncryptCommand(&opts),
		newDecryptCommand(&opts),
		newEncryptBlockCommand(&opts),
		newGenConfigCommand(),
	)
	return cmd
}

func addStreamFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.In, "in", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "ecb or cbc, overrides Cipher.Mode")
	cmd.Flags().StringVarP(&opts.Encoding, "encoding", "e", "", "hex, base64 or raw, overrides Cipher.Encoding")
}

func newEncryptCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, opts, encryptStream)
		},
	}
	addStreamFlags(cmd, opts)
	return cmd
}

func newDecryptCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message produced by encrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStream(cmd, opts, decryptStream)
		},
	}
	addStreamFlags(cmd, opts)
	return cmd
}

func newEncryptBlockCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "encryptblock BLOCK_HEX",
		Short: "Encrypt exactly one 16 byte block",
		Long:  "Encrypt a single hex encoded 16 byte block with no padding, for checking known answer vectors.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := openSession(opts)
			if err != nil {
				return err
			}
			defer closeSession(s, &err)

			out, err := encryptBlockHex(s.cipher, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newGenConfigCommand() *cobra.Command {
	var file, keyOut, mode string

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Cipher.Mode = mode
			cfg.Cipher.KeyFile = keyOut
			if err := cfg.FixupAndValidate(); err != nil {
				return err
			}

			if file == "" {
				if keyOut != "" {
					if err := writeNewKey(keyOut, rand.Reader); err != nil {
						return err
					}
				}
				return cfg.Write(cmd.OutOrStdout())
			}

			// Neither file may already exist; the config path is claimed first.
			f, err := os.OpenFile(file, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
			if err != nil {
				return err
			}
			if keyOut != "" {
				if err := writeNewKey(keyOut, rand.Reader); err != nil {
					f.Close()
					os.Remove(file)
					return err
				}
			}
			if err := cfg.Write(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "file path to write TOML output to, empty indicates stdout")
	cmd.Flags().StringVar(&keyOut, "key-out", "", "generate a random key and write it to this file")
	cmd.Flags().StringVar(&mode, "mode", "ecb", "default mode, ecb or cbc")
	return cmd
}

// writeNewKey writes a fresh random key to path, refusing to replace an
// existing file.
func writeNewKey(path string, entropy io.Reader) error {
	var key [aes256.KeySize]byte
	if _, err := io.ReadFull(entropy, key[:]); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(hex.EncodeToString(key[:]) + "\n")); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
