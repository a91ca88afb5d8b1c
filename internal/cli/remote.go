package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-csv-keeper/internal/adapter"
	"github.com/MKhiriev/go-csv-keeper/internal/escrow"
	"github.com/MKhiriev/go-csv-keeper/internal/validators"
	"github.com/MKhiriev/go-csv-keeper/models"
)

// remoteFlags are the persistent flags of the remote command group.
type remoteFlags struct {
	server  string
	timeout time.Duration
}

func (a *app) newRemoteCmd() *cobra.Command {
	flags := &remoteFlags{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Manage channels on a csv-keeper server",
	}
	cmd.PersistentFlags().StringVarP(&flags.server, "server", "s", "", "server address (default from configuration)")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "request timeout (default from configuration)")

	cmd.AddCommand(
		a.newRemoteCreateCmd(flags),
		a.newRemoteListCmd(flags),
		a.newRemoteGetCmd(flags),
		a.newRemoteDeleteCmd(flags),
		a.newRemoteRecordCmd(flags),
		a.newRemoteRotateCmd(flags),
		a.newRemoteExportCmd(flags),
		a.newRemoteImportCmd(flags),
		a.newRemoteVersionCmd(flags),
	)

	return cmd
}

// serverAdapter creates the server client, applying flag overrides on top of the
// configured address and timeout.
func (a *app) serverAdapter(flags *remoteFlags) (adapter.ChannelAdapter, error) {
	cfg := a.cfg.Adapter
	if flags.server != "" {
		cfg.HTTPAddress = flags.server
	}
	if flags.timeout > 0 {
		cfg.RequestTimeout = flags.timeout
	}

	client, err := a.newAdapter(cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	return client, nil
}

func (a *app) newRemoteCreateCmd(flags *remoteFlags) *cobra.Command {
	var (
		req        models.CreateChannelRequest
		saveRecord string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a channel on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.AdminPassword = passwordOrEnv(req.AdminPassword, envAdminPassword)
			req.UserPassword = passwordOrEnv(req.UserPassword, envUserPassword)
			if err := a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			channel, err := client.CreateChannel(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create channel: %w", err)
			}
			a.logger.Info().Str("channel_id", channel.ChannelID).Str("name", channel.Name).Msg("channel created")

			if saveRecord != "" {
				path, err := a.saveRemoteRecord(cmd, client, channel.ChannelID, dir, saveRecord)
				if err != nil {
					return err
				}
				a.logger.Info().Str("path", path).Msg("record saved")
			}

			fmt.Fprintln(cmd.OutOrStdout(), channel.ChannelID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "channel name")
	cmd.Flags().StringVar(&req.AdminPassword, "admin-password", "", "guarding admin password (env "+envAdminPassword+")")
	cmd.Flags().StringVar(&req.UserPassword, "user-password", "", "per-user password (env "+envUserPassword+")")
	cmd.Flags().StringVar(&saveRecord, "save-record", "", "also store the channel record under this file name")
	cmd.Flags().StringVar(&dir, "dir", "", "record directory for --save-record (default from configuration)")

	return cmd
}

func (a *app) newRemoteListCmd(flags *remoteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			channels, err := client.ListChannels(cmd.Context())
			if err != nil {
				return fmt.Errorf("list channels: %w", err)
			}

			return printChannels(cmd, channels...)
		},
	}
}

func (a *app) newRemoteGetCmd(flags *remoteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <channel-id>",
		Short: "Show one channel",
		Args:  a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			channel, err := client.GetChannel(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get channel: %w", err)
			}

			return printChannels(cmd, channel)
		},
	}
}

func (a *app) newRemoteDeleteCmd(flags *remoteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <channel-id>",
		Short: "Delete a channel and its record",
		Long: `Deletes the channel on the server. Documents protected for the channel
cannot be revealed through the server afterwards; keep a copy of the record
(remote record) if they are still needed.`,
		Args: a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			if err = client.DeleteChannel(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete channel: %w", err)
			}

			a.logger.Info().Str("channel_id", args[0]).Msg("channel deleted")
			return nil
		},
	}
}

func (a *app) newRemoteRecordCmd(flags *remoteFlags) *cobra.Command {
	var (
		dir        string
		recordName string
	)

	cmd := &cobra.Command{
		Use:   "record <channel-id>",
		Short: "Download the envelope record of a channel",
		Long: `Downloads the one-row record CSV of a channel and stores it in the record
directory, replacing a file of the same name. The local protect and reveal
commands can then work without the server.`,
		Args: a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			name := recordName
			if name == "" {
				name = args[0] + ".record.csv"
			}

			path, err := a.saveRemoteRecord(cmd, client, args[0], dir, name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "record directory (default from configuration)")
	cmd.Flags().StringVarP(&recordName, "record", "r", "", "record file name (default <channel-id>.record.csv)")

	return cmd
}

func (a *app) newRemoteRotateCmd(flags *remoteFlags) *cobra.Command {
	var req models.RotateGuardRequest

	cmd := &cobra.Command{
		Use:   "rotate <channel-id>",
		Short: "Re-guard a channel with a new admin password",
		Args:  a.channelIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.OldAdminPassword = passwordOrEnv(req.OldAdminPassword, envAdminPassword)
			req.NewAdminPassword = passwordOrEnv(req.NewAdminPassword, envNewAdminPassword)
			if err := a.validator.Validate(cmd.Context(), req); err != nil {
				return err
			}

			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			channel, err := client.RotateGuard(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("rotate guard: %w", err)
			}

			a.logger.Info().Str("channel_id", channel.ChannelID).Msg("channel rotated")
			return printChannels(cmd, channel)
		},
	}

	cmd.Flags().StringVar(&req.OldAdminPassword, "admin-password", "", "current admin password (env "+envAdminPassword+")")
	cmd.Flags().StringVar(&req.NewAdminPassword, "new-admin-password", "", "new admin password (env "+envNewAdminPassword+")")

	return cmd
}

func (a *app) newRemoteVersionCmd(flags *remoteFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.serverAdapter(flags)
			if err != nil {
				return err
			}

			version, err := client.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("get server version: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// channelIDArg checks that the only argument is a channel id.
func (a *app) channelIDArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	return a.validator.Validate(cmd.Context(), validators.ChannelID(args[0]))
}

// saveRemoteRecord downloads the record of channelID and saves it through
// the record file storage. Parsing it first rejects a corrupted download.
func (a *app) saveRemoteRecord(cmd *cobra.Command, client adapter.ChannelAdapter, channelID, dir, name string) (string, error) {
	data, err := client.DownloadRecord(cmd.Context(), channelID)
	if err != nil {
		return "", fmt.Errorf("download record: %w", err)
	}

	record, err := escrow.UnmarshalRecord(data)
	if err != nil {
		return "", fmt.Errorf("parse downloaded record: %w", err)
	}

	return a.records(dir).SaveRecord(cmd.Context(), name, record)
}

func printChannels(cmd *cobra.Command, channels ...models.Channel) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CHANNEL ID\tNAME\tCREATED\tROTATED")

	for _, channel := range channels {
		rotated := "-"
		if channel.RotatedAt != nil {
			rotated = channel.RotatedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			channel.ChannelID,
			channel.Name,
			channel.CreatedAt.Format(time.RFC3339),
			rotated,
		)
	}

	return w.Flush()
}
