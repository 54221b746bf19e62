package combat

import (
	"fmt"

	"gear_duel/internal/config"
	"gear_duel/internal/gear"
)

// NewCharacters builds the two duelists of cfg. An explicit init overrides the
// file's stat_init; pass "" to use the file value.
func NewCharacters(cfg *config.DuelConfig, init string) (*Character, *Character, error) {
	if cfg == nil || len(cfg.Characters) != Players {
		return nil, nil, &ConfigurationError{Reason: fmt.Sprintf("a duel needs exactly %d characters", Players)}
	}
	if init == "" {
		init = cfg.StatInit
	}
	si, err := ParseStatInit(init)
	if err != nil {
		return nil, nil, &ConfigurationError{Reason: err.Error()}
	}
	a, b := cfg.Characters[0], cfg.Characters[1]
	return NewCharacter(a.Name, a.BaseAttack, a.BaseDefense, si),
		NewCharacter(b.Name, b.BaseAttack, b.BaseDefense, si), nil
}

// PoolFromConfig converts the item definitions of cfg. It returns nil when
// the file defines no items.
func PoolFromConfig(cfg *config.DuelConfig) ([]gear.Item, error) {
	if cfg == nil || len(cfg.Items) == 0 {
		return nil, nil
	}
	pool := make([]gear.Item, 0, len(cfg.Items))
	for i, def := range cfg.Items {
		cat, err := gear.ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		it, err := gear.New(cat, def.Name, def.Prefix, def.Attack, def.Defense)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		pool = append(pool, it)
	}
	return pool, nil
}
