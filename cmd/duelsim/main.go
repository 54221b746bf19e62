package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"gear_duel/internal/combat"
	"gear_duel/internal/config"
	"gear_duel/internal/gear"
	"gear_duel/internal/generate"
	"gear_duel/internal/logger"
	"gear_duel/internal/metrics"
	"gear_duel/internal/sim"
	"gear_duel/internal/util"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "duelsim:", err)
		os.Exit(1)
	}
}

type options struct {
	cfgDir, out, init, metricsFile string
	seed                           int64
	n, workers                     int
	saveLog                        bool
}

func parseFlags(args []string, rt *config.Runtime, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("duelsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.cfgDir, "config", rt.ConfigDir, "config dir")
	fs.StringVar(&o.out, "out", rt.Out, "output file (single) or summary file (batch)")
	fs.StringVar(&o.init, "init", rt.StatInit, "stat init: base or zero (overrides the duel file)")
	fs.StringVar(&o.metricsFile, "metrics", rt.MetricsFile, "prometheus textfile written after a batch")
	fs.Int64Var(&o.seed, "seed", rt.Seed, "seed, 0 picks one from the clock")
	fs.IntVar(&o.n, "n", rt.Runs, "number of simulations")
	fs.IntVar(&o.workers, "workers", rt.Workers, "batch workers")
	fs.BoolVar(&o.saveLog, "log", true, "print every pick when n==1")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if _, err := combat.ParseStatInit(o.init); err != nil {
		return options{}, err
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}
	o, err := parseFlags(args, rt, stderr)
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Level: rt.LogLevel, Format: rt.LogFormat}, stderr)

	duel, err := loadDuel(o.cfgDir, log)
	if err != nil {
		return err
	}
	setup := setupFrom(duel, o.init)
	seed := util.Seed(o.seed)
	log.Info("starting", slog.Int64("seed", seed), slog.Int("runs", o.n))

	if o.n <= 1 {
		return runSingle(setup, seed, o, log, stdout)
	}
	return runBatch(ctx, setup, seed, o, log, stdout)
}

// loadDuel falls back to two default characters and a generated pool when the
// config dir has no duel file.
func loadDuel(dir string, log *slog.Logger) (*config.DuelConfig, error) {
	duel, err := config.LoadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Warn("no duel file, using defaults", slog.String("dir", dir))
		return &config.DuelConfig{Characters: []config.CharacterDef{
			{Name: "Player 1", BaseAttack: 2, BaseDefense: 2},
			{Name: "Player 2", BaseAttack: 2, BaseDefense: 2},
		}}, nil
	}
	return duel, err
}

func setupFrom(duel *config.DuelConfig, init string) sim.Setup {
	return func(rng *rand.Rand) (combat.Combatant, combat.Combatant, []gear.Item, error) {
		one, two, err := combat.NewCharacters(duel, init)
		if err != nil {
			return nil, nil, nil, err
		}
		pool, err := combat.PoolFromConfig(duel)
		if err != nil {
			return nil, nil, nil, err
		}
		if pool == nil {
			if pool, err = generate.Pool(rng); err != nil {
				return nil, nil, nil, err
			}
		}
		return one, two, pool, nil
	}
}

func runSingle(setup sim.Setup, seed int64, o options, log *slog.Logger, stdout io.Writer) error {
	rng := util.New(seed)
	one, two, pool, err := setup(rng)
	if err != nil {
		return err
	}

	opts := []combat.Option{combat.WithRand(rng), combat.WithLogger(log)}
	if o.saveLog {
		fmt.Fprintln(stdout, "Item pool:")
		for _, it := range pool {
			fmt.Fprintln(stdout, " ", it)
		}
		opts = append(opts, combat.WithEmitter(func(ev combat.Event) {
			switch ev.Type {
			case combat.EventPick:
				fmt.Fprintf(stdout, "turn %2d: %s picks %s %s (attack %d, defense %d)\n",
					ev.Turn, ev.Payload["player"], ev.Payload["prefix"], ev.Payload["name"],
					ev.Payload["attack"], ev.Payload["defense"])
			case combat.EventMerge:
				fmt.Fprintf(stdout, "         %s merges into %s\n", ev.Payload["player"], ev.Payload["category"])
			}
		}))
	}
	m, err := combat.NewMatch(one, two, pool, opts...)
	if err != nil {
		return err
	}
	res, err := m.Run()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, one)
	fmt.Fprintln(stdout, two)
	if err := os.WriteFile(o.out, combat.MarshalPretty(res), 0644); err != nil {
		return err
	}
	winner := res.Winner
	if winner == "" {
		winner = "nobody (tie)"
	}
	fmt.Fprintf(stdout, "Single duel finished. Damage %d vs %d, winner: %s -> %s\n",
		res.Players[0].Damage, res.Players[1].Damage, winner, o.out)
	return nil
}

func runBatch(ctx context.Context, setup sim.Setup, seed int64, o options, log *slog.Logger, stdout io.Writer) error {
	reg := prometheus.NewRegistry()
	sum, err := sim.Run(ctx, setup, sim.Options{
		Runs:     o.n,
		Workers:  o.workers,
		Seed:     seed,
		Recorder: metrics.NewRecorder(reg),
		Logger:   log,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.out, combat.MarshalPretty(sum), 0644); err != nil {
		return err
	}
	if o.metricsFile != "" {
		if err := metrics.WriteTextfile(o.metricsFile, reg); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Batch %d done: player one %.1f%%, player two %.1f%%, tie %.1f%% -> %s\n",
		o.n, 100*sum.PlayerOneRate, 100*sum.PlayerTwoRate, 100*sum.TieRate, filepath.Base(o.out))
	return nil
}
