package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"skillscore-backend/lib/serviceutil"
	"skillscore-backend/services/roster"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <participants.csv>",
	Short: "Imports participants from a spreadsheet export into the roster file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, err := os.Open(args[0])
		if err != nil {
			serviceutil.Fatal("failed to open csv file", err)
		}
		defer file.Close()

		participants, skipped, err := roster.ParseCSV(file)
		if err != nil {
			serviceutil.Fatal("failed to parse csv", err)
		}
		for _, name := range skipped {
			slog.Warn("skipping row without a valid profile url", "name", name)
		}

		err = roster.Save(rosterPath, participants)
		if err != nil {
			serviceutil.Fatal("failed to write roster", err)
		}
		slog.Info("roster written",
			"path", rosterPath,
			"participants", len(participants),
			"skipped", len(skipped),
		)
	},
}
