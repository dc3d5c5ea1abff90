package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/lttng"
)

var (
	eventSession      string
	eventChannel      string
	eventDomain       string
	eventFilter       string
	eventLogLevel     int
	eventLogLevelOnly int
	eventExclude      []string
)

var enableEventCmd = &cobra.Command{
	Use:   "enable-event [pattern]",
	Short: "Enable a tracepoint recording rule",
	Long: `Enable a tracepoint event rule on a channel.

Without a pattern the rule matches all tracepoints. Exclusions apply only
to wildcard patterns. Only the user and kernel domains carry tracepoint
rules.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnableEvent,
}

func init() {
	rootCmd.AddCommand(enableEventCmd)
	enableEventCmd.Flags().StringVarP(&eventSession, "session", "s", "", "session name (default: most recent)")
	enableEventCmd.Flags().StringVarP(&eventChannel, "channel", "c", "", "channel name")
	enableEventCmd.Flags().StringVarP(&eventDomain, "domain", "d", "user", "tracing domain (user or kernel)")
	enableEventCmd.Flags().StringVarP(&eventFilter, "filter", "f", "", "filter expression")
	enableEventCmd.Flags().IntVar(&eventLogLevel, "loglevel", -1, "match events at least this severe")
	enableEventCmd.Flags().IntVar(&eventLogLevelOnly, "loglevel-only", -1, "match events of exactly this level")
	enableEventCmd.Flags().StringSliceVarP(&eventExclude, "exclude", "x", nil, "patterns to exclude (wildcard patterns only)")
	enableEventCmd.MarkFlagRequired("channel")
	enableEventCmd.MarkFlagsMutuallyExclusive("loglevel", "loglevel-only")
}

func runEnableEvent(cmd *cobra.Command, args []string) error {
	domain, err := lttng.ParseDomain(eventDomain)
	if err != nil {
		return err
	}

	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	var logLevel lttng.LogLevelRule
	if cmd.Flags().Changed("loglevel") {
		logLevel = lttng.LogLevelAsSevereAs{Level: eventLogLevel}
	} else if cmd.Flags().Changed("loglevel-only") {
		logLevel = lttng.LogLevelExactly{Level: eventLogLevelOnly}
	}

	tracepoint := lttng.TracepointEventRule{
		NamePattern:           pattern,
		FilterExpression:      eventFilter,
		LogLevel:              logLevel,
		NamePatternExclusions: eventExclude,
	}

	var rule lttng.EventRule
	switch domain {
	case lttng.DomainUser:
		rule = lttng.UserTracepointEventRule{TracepointEventRule: tracepoint}
	case lttng.DomainKernel:
		rule = lttng.KernelTracepointEventRule{TracepointEventRule: tracepoint}
	default:
		return &lttng.UnsupportedError{Kind: "event rule domain", Value: domain.String()}
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	sessionName, err := resolveSessionName(newStore(), eventSession)
	if err != nil {
		return err
	}

	channel := client.Session(sessionName).Channel(domain, eventChannel)
	if err := channel.AddRecordingRule(cmd.Context(), rule); err != nil {
		return fmt.Errorf("enabling event rule: %w", err)
	}

	if pattern == "" {
		pattern = "(all)"
	}
	fmt.Printf("Event rule %s enabled on channel %s\n", pattern, eventChannel)
	return nil
}
