package main

import (
	"context"

	"skillscore-backend/cmd/rosterctl/commands"
	"skillscore-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
