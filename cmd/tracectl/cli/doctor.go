package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/majorcontext/tracectl/internal/config"
	"github.com/majorcontext/tracectl/internal/doctor"
	"github.com/majorcontext/tracectl/internal/env"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnostic information about the tracectl environment",
	Long: `Displays diagnostic information for debugging.

This command shows:
- tracectl version and platform
- lttng client resolution and version
- home directory status
- locally recorded sessions`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	reg := doctor.NewRegistry()
	reg.Register(&versionSection{})
	reg.Register(&clientSection{})
	reg.Register(&homeSection{})
	reg.Register(&sessionsSection{})

	for _, section := range reg.Sections() {
		fmt.Printf("## %s\n", section.Name())
		if err := section.Print(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		fmt.Println()
	}
	return nil
}

// versionSection shows platform and version info.
type versionSection struct{}

func (s *versionSection) Name() string { return "Version" }

func (s *versionSection) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "tracectl:\t%s\n", Version())
	fmt.Fprintf(tw, "Platform:\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
	return tw.Flush()
}

// clientSection shows how the lttng client resolves and what it reports as
// its version.
type clientSection struct{}

func (s *clientSection) Name() string { return "Client" }

func (s *clientSection) Print(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	environment, err := env.Resolve(cfg)
	if err != nil {
		fmt.Fprintf(w, "lttng client: not found (%v)\n", err)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Path:\t%s\n", environment.ClientPath())

	out, err := exec.Command(environment.ClientPath(), "--version").CombinedOutput()
	if err != nil {
		fmt.Fprintf(tw, "Version:\tunavailable (%v)\n", err)
	} else {
		fmt.Fprintf(tw, "Version:\t%s\n", strings.TrimSpace(string(out)))
	}
	return tw.Flush()
}

// homeSection shows the resolved home directory and whether it is writable.
type homeSection struct{}

func (s *homeSection) Name() string { return "Home" }

func (s *homeSection) Print(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	environment, err := env.Resolve(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "LTTNG_HOME:\t%s\n", environment.Home())

	probe := filepath.Join(environment.Home(), ".tracectl-doctor")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		fmt.Fprintf(tw, "Writable:\tno (%v)\n", err)
	} else {
		os.Remove(probe)
		fmt.Fprintf(tw, "Writable:\tyes\n")
	}
	return tw.Flush()
}

// sessionsSection lists locally recorded sessions.
type sessionsSection struct{}

func (s *sessionsSection) Name() string { return "Sessions" }

func (s *sessionsSection) Print(w io.Writer) error {
	records, err := newStore().List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No recorded sessions")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d channel(s)\n", rec.Name, rec.State, len(rec.Channels))
	}
	return tw.Flush()
}
