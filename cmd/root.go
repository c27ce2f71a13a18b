package cmd

import (
	"fmt"
	"os"

	"github.com/agentkb/memoria/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	homeDir string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memoria",
	Short: "Sync AI agent sessions into a knowledge vault",
	Long: `Import structured AI-agent session logs into a SQLite store and project
them into a plain-text knowledge vault.

Each synced session produces:
  • A section in the daily note for its calendar date
  • One decision record per DecisionMade event
  • One skill record per SkillLearned event (overwritten per skill name)

Quick Start:
  memoria init                   # Initialize the store and vault layout
  memoria sync session.json      # Import a session and project artifacts
  memoria list                   # List imported sessions

Set MEMORIA_HOME to point at your project directory; the store lives in
$MEMORIA_HOME/.memory and the vault in $MEMORIA_HOME/knowledge.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Project home directory (overrides MEMORIA_HOME)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
