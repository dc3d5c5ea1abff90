package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/control"
	"github.com/majorcontext/tracectl/internal/lttng"
)

var (
	trackSession   string
	trackDomain    string
	trackAttribute string
)

var trackCmd = &cobra.Command{
	Use:   "track VALUE",
	Short: "Add a value to a process-attribute allow list",
	Long: `Track a process attribute value in a session.

VALUE is a numeric identifier, or a process name for the pid and vpid
attributes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(cmd, args, "track")
	},
}

var untrackCmd = &cobra.Command{
	Use:   "untrack VALUE",
	Short: "Remove a value from a process-attribute allow list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(cmd, args, "untrack")
	},
}

func init() {
	for _, cmd := range []*cobra.Command{trackCmd, untrackCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().StringVarP(&trackSession, "session", "s", "", "session name (default: most recent)")
		cmd.Flags().StringVarP(&trackDomain, "domain", "d", "kernel", "tracing domain")
		cmd.Flags().StringVarP(&trackAttribute, "attribute", "a", "pid", "process attribute (pid, vpid, uid, vuid, gid, vgid)")
	}
}

func runTrack(cmd *cobra.Command, args []string, verb string) error {
	domain, err := lttng.ParseDomain(trackDomain)
	if err != nil {
		return err
	}
	attribute, err := lttng.ParseProcessAttribute(trackAttribute)
	if err != nil {
		return err
	}

	var value lttng.TrackerValue
	if n, convErr := strconv.Atoi(args[0]); convErr == nil {
		value = lttng.IntegerValue(n)
	} else {
		value = lttng.NameValue(args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	sessionName, err := resolveSessionName(newStore(), trackSession)
	if err != nil {
		return err
	}

	tracker, err := sessionTracker(client.Session(sessionName), domain, attribute)
	if err != nil {
		return err
	}

	if verb == "track" {
		err = tracker.Track(cmd.Context(), value)
	} else {
		err = tracker.Untrack(cmd.Context(), value)
	}
	if err != nil {
		return fmt.Errorf("%s %s %s: %w", verb, trackAttribute, args[0], err)
	}

	fmt.Printf("%s %s %s in session %s\n", verb, trackAttribute, args[0], sessionName)
	return nil
}

// sessionTracker maps a (domain, attribute) pair onto the session's fixed
// tracker set.
func sessionTracker(session *control.Session, domain lttng.TracingDomain, attribute lttng.ProcessAttribute) (*control.ProcessAttributeTracker, error) {
	switch domain {
	case lttng.DomainKernel:
		switch attribute {
		case lttng.AttributePID:
			return session.KernelPidTracker(), nil
		case lttng.AttributeVPID:
			return session.KernelVpidTracker(), nil
		case lttng.AttributeUID:
			return session.KernelUidTracker(), nil
		case lttng.AttributeVUID:
			return session.KernelVuidTracker(), nil
		case lttng.AttributeGID:
			return session.KernelGidTracker(), nil
		case lttng.AttributeVGID:
			return session.KernelVgidTracker(), nil
		}
	case lttng.DomainUser:
		switch attribute {
		case lttng.AttributeVPID:
			return session.UserVpidTracker(), nil
		case lttng.AttributeVUID:
			return session.UserVuidTracker(), nil
		case lttng.AttributeVGID:
			return session.UserVgidTracker(), nil
		}
	}
	return nil, &lttng.UnsupportedError{
		Kind:  "tracker",
		Value: fmt.Sprintf("%s %s", domain, attribute),
	}
}
