// Package main provides the simulate binary: it loads a scenario, plays it,
// and logs the analysis report. All logic lives in internal packages; this
// is wiring only.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dicelab/internal/config"
	"github.com/cory-johannsen/dicelab/internal/observability"
	"github.com/cory-johannsen/dicelab/internal/scenario"
	"github.com/cory-johannsen/dicelab/internal/simulation"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file; empty = run every scenario in the configured directory")
	rolls := flag.Int("rolls", 0, "override roll count for all scenarios; 0 = use scenario/config values")
	seed := flag.Uint64("seed", 0, "override random seed; 0 = use config value")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var defs []*scenario.Def
	if *scenarioPath != "" {
		def, err := scenario.LoadFile(*scenarioPath)
		if err != nil {
			logger.Fatal("loading scenario", zap.Error(err))
		}
		defs = append(defs, def)
	} else {
		defs, err = scenario.LoadDir(cfg.Simulation.ScenarioDir)
		if err != nil {
			logger.Fatal("loading scenarios", zap.Error(err))
		}
		if len(defs) == 0 {
			logger.Fatal("no scenarios found", zap.String("dir", cfg.Simulation.ScenarioDir))
		}
	}

	runner := simulation.NewRunner(cfg.Simulation, logger)
	for _, def := range defs {
		if *rolls != 0 {
			def.Rolls = *rolls
		}
		report, err := runner.Run(def)
		if err != nil {
			logger.Fatal("running scenario", zap.String("scenario", def.Name), zap.Error(err))
		}

		fields := []zap.Field{
			zap.String("run_id", report.RunID.String()),
			zap.String("scenario", report.Scenario),
			zap.Int("rolls", report.Rolls),
			zap.Int("dice", report.Dice),
			zap.Int("jackpots", report.TotalJackpots),
			zap.Int("distinct_combos", len(report.Combos)),
		}
		for face, n := range report.FaceTotals {
			fields = append(fields, zap.Int("face_"+face, n))
		}
		logger.Info("report", fields...)
	}
}
