package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/agentkb/memoria/internal"
	"github.com/spf13/cobra"
)

var showEvents bool

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session and its events",
	Long:  `Show a single imported session with its metadata and, optionally, every event.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		paths, err := internal.ResolvePaths(homeDir)
		if err != nil {
			return err
		}

		db, err := internal.OpenDatabase(paths.DatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		store := internal.NewStorage(db)
		session, err := store.GetSession(sessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return fmt.Errorf("session not found: %s (use 'memoria list' to see available sessions)", sessionID)
		}

		fmt.Println(headerStyle.Render("Session " + session.ID))
		fmt.Println()
		fmt.Printf("%s %s\n", titleStyle.Render("Project:"), session.Project)
		fmt.Printf("%s %s\n", titleStyle.Render("Timestamp:"), session.Timestamp)
		fmt.Printf("%s %d\n", titleStyle.Render("Events:"), session.EventCount)
		if session.Summary != "" {
			fmt.Printf("%s %s\n", titleStyle.Render("Summary:"), session.Summary)
		}

		if !showEvents {
			return nil
		}

		events, err := store.ListEvents(sessionID, "")
		if err != nil {
			return err
		}

		fmt.Println()
		for _, event := range events {
			eventType := event.EventType
			if eventType == "" {
				eventType = "untyped"
			}
			fmt.Printf("%s %s %s\n", countStyle.Render("•"), eventType, dateStyle.Render(event.Timestamp))

			// Pretty-print content when it is more than an empty object
			var content map[string]interface{}
			if err := json.Unmarshal([]byte(event.Content), &content); err == nil && len(content) > 0 {
				pretty, _ := json.MarshalIndent(content, "  ", "  ")
				fmt.Printf("  %s\n", string(pretty))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showEvents, "events", false, "Include the session's events")
}
