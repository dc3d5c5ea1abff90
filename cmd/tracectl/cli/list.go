package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions created by this tool",
	Long: `List locally recorded sessions.

Only sessions created through tracectl appear here; the external tool is
not queried.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := newStore().List()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No recorded sessions")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATE\tOUTPUT\tCHANNELS\tCREATED")
	for _, rec := range records {
		output := rec.Output
		if output == "" {
			output = "(none)"
		}
		channels := strings.Join(rec.Channels, ",")
		if channels == "" {
			channels = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			rec.Name, rec.State, output, channels, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
