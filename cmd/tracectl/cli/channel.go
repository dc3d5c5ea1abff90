package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/lttng"
)

var (
	channelSession string
	channelDomain  string
)

var enableChannelCmd = &cobra.Command{
	Use:   "enable-channel [name]",
	Short: "Enable a recording channel",
	Long: `Enable a recording channel in a session and domain.

A generated channel name is used when none is given. Channel names are
unique within their session and domain; the external tool rejects
collisions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnableChannel,
}

func init() {
	rootCmd.AddCommand(enableChannelCmd)
	enableChannelCmd.Flags().StringVarP(&channelSession, "session", "s", "", "session name (default: most recent)")
	enableChannelCmd.Flags().StringVarP(&channelDomain, "domain", "d", "user", "tracing domain (user, kernel, jul, log4j, python)")
}

func runEnableChannel(cmd *cobra.Command, args []string) error {
	domain, err := lttng.ParseDomain(channelDomain)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	manager := newStore()

	sessionName, err := resolveSessionName(manager, channelSession)
	if err != nil {
		return err
	}

	channelName := ""
	if len(args) > 0 {
		channelName = args[0]
	}

	channel, err := client.Session(sessionName).AddChannel(cmd.Context(), domain, channelName)
	if err != nil {
		return fmt.Errorf("enabling channel: %w", err)
	}

	_ = manager.AddChannel(sessionName, domain.String(), channel.Name())
	fmt.Printf("Channel %s enabled in session %s\n", channel.Name(), sessionName)
	return nil
}
