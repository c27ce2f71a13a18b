package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agentkb/memoria/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	projectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported sessions",
	Long:  `List all sessions imported into the store, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := internal.ResolvePaths(homeDir)
		if err != nil {
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

		sessions, err := internal.NewStorage(db).ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		displaySessions(sessions)
		return nil
	},
}

func displaySessions(sessions []*internal.Session) {
	if len(sessions) == 0 {
		fmt.Println(headerStyle.Render("No sessions found"))
		return
	}

	header := headerStyle.Render(fmt.Sprintf("Found %d session(s)", len(sessions)))
	fmt.Println(header)
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Project")+"\t"+titleStyle.Render("Events")+"\t"+titleStyle.Render("Date")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, session := range sessions {
		project := session.Project
		if project == "" {
			project = "default"
		}
		if len(project) > 30 {
			project = project[:27] + "..."
		}

		date := dateStyle.Render("—")
		if t, err := internal.ParseTimestamp(session.Timestamp); err == nil {
			date = dateStyle.Render(formatSessionDate(t))
		}

		// Show short ID (first 12 chars) for readability
		shortID := session.ID
		if len(shortID) > 12 {
			shortID = shortID[:12]
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(shortID),
			projectStyle.Render(project),
			countStyle.Render(strconv.Itoa(session.EventCount)),
			date)
	}

	_ = w.Flush()
	fmt.Println()
	fmt.Println(idStyle.Render("Tip: use `memoria show <id>` to inspect a session"))
}

func formatSessionDate(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)
	switch {
	case diff < 24*time.Hour:
		return t.Format("Today 15:04")
	case diff < 7*24*time.Hour:
		return t.Format("Mon 15:04")
	case diff < 365*24*time.Hour:
		return t.Format("Jan 02 15:04")
	default:
		return t.Format("2006-01-02")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
