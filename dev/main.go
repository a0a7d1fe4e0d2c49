// Command dev scaffolds a local development environment: it writes
// the config files the server expects with values suitable for
// running against the real platform from a laptop.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"skillscore-backend/lib/telemetry"
)

var devFiles = map[string]string{
	"config.json5": `{
	port: 8080,
	scoring_config: "scoring.json5",
	allow_list: "allowlist.json5",
	roster: "roster.json5",
}
`,
	"roster.json5": `{
	participants: [
		// objects or bare profile urls both work
		{
			name: "Example Participant",
			email: "example@example.com",
			profile_url: "https://www.cloudskillsboost.google/public_profiles/00000000-0000-0000-0000-000000000000",
			batch: "dev",
		},
	],
}
`,
	"allowlist.json5": `{
	// an empty allow-list scores every completed item
	allowed_items: [],
	metadata: { total_count: 0, badge_count: 0, game_count: 0 },
}
`,
}

func create(recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	for name, contents := range devFiles {
		if !recreate {
			_, err := os.Stat(name)
			if err == nil {
				slog.Info("file exists, skipping", "name", name)
				continue
			}
		}
		err := os.WriteFile(name, []byte(contents), 0644)
		if err != nil {
			return err
		}
		slog.Info("wrote dev config", "name", name)
	}

	// no scoring.json5 on purpose: the built-in defaults apply when
	// the file is absent, which is the configuration to develop
	// against first
	return nil
}

func main() {
	recreate := flag.Bool("recreate", false, "overwrite existing dev config files")
	flag.Parse()

	telemetry.InitSlog(true)

	err := create(*recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}
}
