package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/lttng"
)

var (
	contextSession string
	contextChannel string
	contextDomain  string
)

var addContextCmd = &cobra.Command{
	Use:   "add-context TYPE",
	Short: "Attach a context field to a channel",
	Long: `Attach a context-enrichment field to every event a channel records.

TYPE is vpid, vuid, vgid, or a Java application context spelled
$app.<retriever>:<field>.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddContext,
}

func init() {
	rootCmd.AddCommand(addContextCmd)
	addContextCmd.Flags().StringVarP(&contextSession, "session", "s", "", "session name (default: most recent)")
	addContextCmd.Flags().StringVarP(&contextChannel, "channel", "c", "", "channel name")
	addContextCmd.Flags().StringVarP(&contextDomain, "domain", "d", "user", "tracing domain")
	addContextCmd.MarkFlagRequired("channel")
}

func runAddContext(cmd *cobra.Command, args []string) error {
	contextType, err := lttng.ParseContextType(args[0])
	if err != nil {
		return err
	}
	domain, err := lttng.ParseDomain(contextDomain)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	sessionName, err := resolveSessionName(newStore(), contextSession)
	if err != nil {
		return err
	}

	channel := client.Session(sessionName).Channel(domain, contextChannel)
	if err := channel.AddContext(cmd.Context(), contextType); err != nil {
		return fmt.Errorf("adding context: %w", err)
	}

	fmt.Printf("Context %s added to channel %s\n", args[0], contextChannel)
	return nil
}
