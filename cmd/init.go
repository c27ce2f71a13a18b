package cmd

import (
	"fmt"

	"github.com/agentkb/memoria/internal"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the session store and vault layout",
	Long: `Create the storage directory, the knowledge vault areas (Daily, Decisions,
Skills) and the session database schema. Safe to run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.ResolvePaths(homeDir)
		if err != nil {
			return err
		}
		if err := paths.EnsureDirs(); err != nil {
			return err
		}

		db, err := internal.OpenDatabase(paths.DatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := internal.InitSchema(db); err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Database initialized: %s", paths.DatabasePath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
