// ABOUTME: Version command reporting the docrag build
// ABOUTME: Release values are injected through ldflags at build time
package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo identifies one docrag build.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var build = BuildInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// SetVersion records the build identity (called from main)
func SetVersion(version, commit, date string) {
	build = BuildInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docrag version",
		Long: `Print the docrag version along with the commit and build date baked
in at release time, and the Go runtime it was compiled with.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docrag %s (commit %s, built %s, %s)\n",
				build.Version, build.Commit, build.Date, runtime.Version())
		},
	}
}
