package main

import (
	"context"
	"flag"
	"log/slog"

	"skillscore-backend/lib/configutil"
	"skillscore-backend/lib/scrapers/skillsboost"
	"skillscore-backend/lib/serviceutil"
	"skillscore-backend/lib/telemetry"
	"skillscore-backend/services/calculator"
	"skillscore-backend/services/roster"
	"skillscore-backend/services/scoring"
)

type Config struct {
	Port int `json:"port"`
	// paths to the rubric, allow-list and roster files. empty values
	// fall back to the files next to the config
	ScoringConfig string `json:"scoring_config"`
	AllowList     string `json:"allow_list"`
	Roster        string `json:"roster"`
}

func main() {
	verbose := flag.Bool("v", false, "enable verbose logging")
	cfgPath := flag.String("config", "config.json5", "specify the path to a config file")
	flag.Parse()

	telemetry.InitSlog(*verbose)

	config, err := configutil.ReadConfigDefault(*cfgPath, Config{
		Port:          8080,
		ScoringConfig: "scoring.json5",
		AllowList:     "allowlist.json5",
		Roster:        "roster.json5",
	})
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "skillscore-server")
	if err != nil {
		slog.Warn("telemetry disabled", "err", err.Error())
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Error("failed to shutdown telemetry", "err", err.Error())
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	slog.Info("loading scoring config...")
	scoringConfig, err := scoring.LoadConfig(config.ScoringConfig)
	if err != nil {
		serviceutil.Fatal("failed to load scoring config", err)
	}
	allowList, err := scoring.LoadAllowList(config.AllowList)
	if err != nil {
		serviceutil.Fatal("failed to load allow-list", err)
	}

	slog.Info("loading roster...")
	store, err := roster.Load(config.Roster)
	if err != nil {
		serviceutil.Fatal("failed to load roster", err)
	}
	slog.Info("roster loaded", "participants", len(store.List()))

	client, err := skillsboost.NewClient(skillsboost.ClientOptions{})
	if err != nil {
		serviceutil.Fatal("failed to initialize skills boost client", err)
	}

	service := calculator.NewService(calculator.ServiceOptions{
		Client: client,
		Roster: store,
		Config: scoringConfig,
		Allow:  allowList,
	})

	serviceutil.StartHttpServer(config.Port, calculator.NewHandler(service))
}
