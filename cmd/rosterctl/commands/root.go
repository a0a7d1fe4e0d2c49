package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rosterPath string

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "rosterctl manages the participant roster file.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&rosterPath, "roster", "roster.json5",
		"The roster file to operate on.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
