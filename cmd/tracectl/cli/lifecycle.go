package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start [session]",
	Short: "Start recording",
	Long:  "Start recording on a session. Defaults to the most recently created session.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd, args, "start")
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop [session]",
	Short: "Stop recording",
	Long:  "Stop recording on a session without destroying it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd, args, "stop")
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy [session]",
	Short: "Destroy a tracing session",
	Long:  "Destroy a session and drop its local record. Trace output on disk is left untouched.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLifecycle(cmd, args, "destroy")
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(destroyCmd)
}

func runLifecycle(cmd *cobra.Command, args []string, verb string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	manager := newStore()

	nameArg := ""
	if len(args) > 0 {
		nameArg = args[0]
	}
	sessionName, err := resolveSessionName(manager, nameArg)
	if err != nil {
		return err
	}

	session := client.Session(sessionName)
	switch verb {
	case "start":
		if err := session.Start(cmd.Context()); err != nil {
			return fmt.Errorf("starting session %s: %w", sessionName, err)
		}
		recordState(manager, sessionName, store.StateStarted)
		fmt.Printf("Session %s started\n", sessionName)
	case "stop":
		if err := session.Stop(cmd.Context()); err != nil {
			return fmt.Errorf("stopping session %s: %w", sessionName, err)
		}
		recordState(manager, sessionName, store.StateStopped)
		fmt.Printf("Session %s stopped\n", sessionName)
	case "destroy":
		if err := session.Destroy(cmd.Context()); err != nil {
			return fmt.Errorf("destroying session %s: %w", sessionName, err)
		}
		if err := manager.Delete(sessionName); err != nil {
			return fmt.Errorf("dropping record for %s: %w", sessionName, err)
		}
		fmt.Printf("Session %s destroyed\n", sessionName)
	}
	return nil
}

// recordState updates the local record; a missing record is not an error
// since sessions may have been created outside this tool.
func recordState(manager *store.Manager, sessionName, state string) {
	_ = manager.SetState(sessionName, state)
}
