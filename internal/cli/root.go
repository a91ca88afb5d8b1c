// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the csvkeeper command-line tool.
//
// Local commands (init, protect, reveal, rotate) work on envelope record
// files in a directory and never touch the network. The remote command group
// drives a csv-keeper server through [adapter.ChannelAdapter].
//
// Command output goes to stdout, diagnostics go to stderr through a
// console [logger.Logger], so protected text can be piped safely.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/internal/adapter"
	"github.com/MKhiriev/go-csv-keeper/internal/codec"
	"github.com/MKhiriev/go-csv-keeper/internal/config"
	"github.com/MKhiriev/go-csv-keeper/internal/crypto"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/logger"
	"github.com/MKhiriev/go-csv-keeper/internal/store"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "csvkeeper/skip-config"

// AdapterFactory creates the client used by the remote commands.
type AdapterFactory func(cfg config.Adapter, logger *logger.Logger) (adapter.ChannelAdapter, error)

// Option customises the command tree.
type Option func(*app)

// WithAdapterFactory replaces the default HTTP adapter constructor.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(a *app) {
		a.newAdapter = factory
	}
}

// app holds the state shared by all commands of one invocation.
type app struct {
	buildInfo  models.AppBuildInfo
	newAdapter AdapterFactory
	validator  validators.Validator

	configPath string
	verbose    bool

	logger *logger.Logger
	cfg    *config.CLIConfig
}

// NewRootCmd builds the csvkeeper command tree.
func NewRootCmd(buildInfo models.AppBuildInfo, opts ...Option) *cobra.Command {
	a := &app{
		buildInfo:  buildInfo,
		newAdapter: adapter.NewHTTPChannelAdapter,
		validator:  validators.NewChannelValidator(),
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	root := &cobra.Command{
		Use:   "csvkeeper",
		Short: "Protect CSV exports with password-derived keys",
		Long: `csvkeeper encrypts and decrypts CSV documents exchanged with the
training-management application.

An administrator creates an envelope record once per channel. The record
guards the channel's user password with the admin password; either password
can afterwards protect and reveal CSV data of that channel.

Protected files have the form <base64 nonce>:<base64 ciphertext>.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a JSON configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug output on stderr")

	root.AddCommand(
		a.newInitCmd(),
		a.newProtectCmd(),
		a.newRevealCmd(),
		a.newRotateCmd(),
		a.newRemoteCmd(),
		a.newVersionCmd(),
	)

	return root
}

// setup runs before every command: it creates the console logger and loads
// the CLI configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = logger.NewCLILogger("cli", cmd.ErrOrStderr(), a.verbose)

	if cmd.Annotations[skipConfigAnnotation] != "" {
		return nil
	}

	cfg, err := config.GetCLIConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg

	a.logger.Debug().
		Str("record_dir", cfg.RecordDir).
		Str("kdf", cfg.KDF.String()).
		Str("server", cfg.Adapter.HTTPAddress).
		Msg("configuration loaded")

	return nil
}

// newCrypto builds the escrow service and payload codec over the standard
// provider with the configured derivation parameters.
func (a *app) newCrypto() (escrow.Service, codec.PayloadCodec, error) {
	cipher := crypto.NewCipherService(crypto.NewProvider())

	escrowService, err := escrow.NewService(cipher, a.cfg.KDF)
	if err != nil {
		return nil, nil, fmt.Errorf("create escrow service: %w", err)
	}

	return escrowService, codec.NewPayloadCodec(cipher), nil
}

// records returns the record file storage rooted at dir, falling back to the
// configured directory.
func (a *app) records(dir string) store.RecordFileStorage {
	if dir == "" {
		dir = a.cfg.RecordDir
	}
	return store.NewRecordFileStorage(dir, a.logger)
}
