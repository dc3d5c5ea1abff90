package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/lttng"
	"github.com/majorcontext/tracectl/internal/store"
)

var createOutput string

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a tracing session",
	Long: `Create a tracing session.

Without --output the session records to no output. A generated name is
used when none is given; the name is recorded locally so later commands
can default to the most recent session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createOutput, "output", "o", "", "local trace output path (default: no output)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	sessionName := ""
	if len(args) > 0 {
		sessionName = args[0]
	}

	var output lttng.SessionOutput
	if createOutput != "" {
		output = lttng.LocalOutput{Path: createOutput}
	}

	session, err := client.CreateSession(cmd.Context(), sessionName, output)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	rec := &store.Record{
		Name:      session.Name(),
		Output:    createOutput,
		CreatedAt: time.Now(),
		State:     store.StateCreated,
	}
	if err := newStore().Save(rec); err != nil {
		return fmt.Errorf("recording session %s: %w", session.Name(), err)
	}

	fmt.Printf("Session %s created\n", session.Name())
	return nil
}
