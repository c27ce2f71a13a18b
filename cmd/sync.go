package cmd

import (
	"fmt"

	"github.com/agentkb/memoria/internal"
	"github.com/spf13/cobra"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync <session-file.json>",
	Short: "Import a session file and project vault artifacts",
	Long: `Run the full pipeline over one session payload file:

  1. Import the session and its events into the store
  2. Append a summary section to the daily note for the session's date
  3. Write one decision record per DecisionMade event
  4. Write (or overwrite) one skill record per SkillLearned event

Any failure aborts the invocation; writes already committed stay committed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionFile := args[0]

		paths, err := internal.ResolvePaths(homeDir)
		if err != nil {
			return err
		}
		if err := paths.EnsureDirs(); err != nil {
			return err
		}

		// Schema init is idempotent; keeps sync usable on a fresh home
		db, err := internal.OpenDatabase(paths.DatabasePath())
		if err != nil {
			return err
		}
		if err := internal.InitSchema(db); err != nil {
			db.Close()
			return err
		}
		db.Close()

		sessionID, err := internal.NewImporter(paths).ImportFile(sessionFile)
		if err != nil {
			return fmt.Errorf("failed to import session: %w", err)
		}
		internal.PrintSuccess("Imported session: " + sessionID)

		if err := internal.NewDailyNoteProjector(paths).Sync(sessionID); err != nil {
			return fmt.Errorf("failed to sync daily note: %w", err)
		}
		if _, err := internal.NewDecisionExtractor(paths).Extract(sessionID); err != nil {
			return fmt.Errorf("failed to extract decisions: %w", err)
		}
		if _, err := internal.NewSkillExtractor(paths).Extract(sessionID); err != nil {
			return fmt.Errorf("failed to extract skills: %w", err)
		}

		internal.PrintSuccess("Sync complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
