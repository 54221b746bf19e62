package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"gear_duel/internal/combat"
	"gear_duel/internal/gear"
	"gear_duel/internal/logger"
	"gear_duel/internal/metrics"
	"gear_duel/internal/util"
)

// Setup prepares a fresh duel. rng is the run's own generator; the match uses
// the same one for tie-breaks afterwards.
type Setup func(rng *rand.Rand) (one, two combat.Combatant, pool []gear.Item, err error)

type Options struct {
	Runs     int
	Workers  int
	Seed     int64
	Recorder *metrics.Recorder
	Logger   *slog.Logger
}

type Summary struct {
	Runs          int            `json:"runs"`
	Seed          int64          `json:"seed"`
	PlayerOneWins int            `json:"player_one_wins"`
	PlayerTwoWins int            `json:"player_two_wins"`
	Ties          int            `json:"ties"`
	PlayerOneRate float64        `json:"player_one_rate"`
	PlayerTwoRate float64        `json:"player_two_rate"`
	TieRate       float64        `json:"tie_rate"`
	AvgDamage     [2]float64     `json:"avg_damage"`
	Merges        map[string]int `json:"merges_by_category"`
}

// Run plays opts.Runs independent duels on at most opts.Workers goroutines.
// Run i is seeded with util.RunSeed(opts.Seed, i), so the summary does not
// depend on scheduling.
func Run(ctx context.Context, setup Setup, opts Options) (Summary, error) {
	if opts.Runs <= 0 {
		return Summary{}, fmt.Errorf("batch: runs must be positive, got %d", opts.Runs)
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	var (
		mu        sync.Mutex
		sum       = Summary{Runs: opts.Runs, Seed: opts.Seed, Merges: map[string]int{}}
		damageOne int
		damageTwo int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Runs; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := playOne(setup, util.RunSeed(opts.Seed, i), i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			if opts.Recorder != nil {
				opts.Recorder.Observe(res)
			}

			mu.Lock()
			defer mu.Unlock()
			switch res.Outcome {
			case combat.OutcomePlayerOne:
				sum.PlayerOneWins++
			case combat.OutcomePlayerTwo:
				sum.PlayerTwoWins++
			default:
				sum.Ties++
			}
			damageOne += res.Players[0].Damage
			damageTwo += res.Players[1].Damage
			for _, p := range res.Picks {
				if p.Merged {
					sum.Merges[p.Category]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	// Wait cancels gctx; only the caller's context matters here.
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	n := float64(opts.Runs)
	sum.PlayerOneRate = float64(sum.PlayerOneWins) / n
	sum.PlayerTwoRate = float64(sum.PlayerTwoWins) / n
	sum.TieRate = float64(sum.Ties) / n
	sum.AvgDamage = [2]float64{float64(damageOne) / n, float64(damageTwo) / n}
	log.Info("batch finished",
		slog.Int("runs", sum.Runs),
		slog.Float64("player_one_rate", sum.PlayerOneRate),
		slog.Float64("player_two_rate", sum.PlayerTwoRate),
		slog.Float64("tie_rate", sum.TieRate))
	return sum, nil
}

func playOne(setup Setup, seed int64, i int) (combat.Result, error) {
	rng := util.New(seed)
	one, two, pool, err := setup(rng)
	if err != nil {
		return combat.Result{}, err
	}
	m, err := combat.NewMatch(one, two, pool,
		combat.WithRand(rng),
		combat.WithLogger(logger.Discard()),
		combat.WithID(fmt.Sprintf("run-%d", i)))
	if err != nil {
		return combat.Result{}, err
	}
	return m.Run()
}
