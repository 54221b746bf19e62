package generate

import (
	"fmt"

	"gear_duel/internal/gear"
)

// Rand is the subset of *rand.Rand the generator uses.
type Rand interface {
	Intn(n int) int
}

const (
	Size = 20
	// MaxStat is the exclusive upper bound of a generated stat.
	MaxStat = 10

	guaranteed = 5
)

// Pool builds a demo pool of Size items: five of each category, then five
// more of random categories. Prefixes run adj1..adj20.
func Pool(rng Rand) ([]gear.Item, error) {
	pool := make([]gear.Item, 0, Size)
	add := func(it gear.Item, err error) error {
		if err != nil {
			return fmt.Errorf("generate pool: %w", err)
		}
		pool = append(pool, it)
		return nil
	}

	for i := 0; i < guaranteed; i++ {
		if err := add(gear.NewHead(adj(i+1), "Helmet", rng.Intn(MaxStat))); err != nil {
			return nil, err
		}
		if err := add(gear.NewHand(adj(i+1+guaranteed), "Glove", rng.Intn(MaxStat))); err != nil {
			return nil, err
		}
		if err := add(gear.NewFoot(adj(i+1+2*guaranteed), "Boot", rng.Intn(MaxStat), rng.Intn(MaxStat))); err != nil {
			return nil, err
		}
	}

	// Head and hand each get a one-in-three roll of their own, so the extra
	// items lean towards boots.
	for n := 3*guaranteed + 1; n <= Size; n++ {
		var err error
		switch {
		case rng.Intn(3) == 0:
			err = add(gear.NewHead(adj(n), "Helmet", rng.Intn(MaxStat)))
		case rng.Intn(3) == 1:
			err = add(gear.NewHand(adj(n), "Glove", rng.Intn(MaxStat)))
		default:
			err = add(gear.NewFoot(adj(n), "Boot", rng.Intn(MaxStat), rng.Intn(MaxStat)))
		}
		if err != nil {
			return nil, err
		}
	}
	return pool, nil
}

func adj(n int) string { return fmt.Sprintf("adj%d", n) }
