package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"skillscore-backend/lib/serviceutil"
	"skillscore-backend/services/roster"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the participants in the roster file.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := roster.Load(rosterPath)
		if err != nil {
			serviceutil.Fatal("failed to load roster", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Email", "Profile ID", "Batch", "Status"})

		for _, p := range store.List() {
			t.AppendRow(table.Row{p.Name, p.Email, p.ProfileID, p.Batch, p.Status})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
