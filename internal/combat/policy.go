package combat

import "gear_duel/internal/gear"

// Policy picks the index of the item a character takes from the pool this turn.
type Policy interface {
	Pick(pool []gear.Item, holder SlotHolder) (int, error)
}

// GreedyPolicy takes the best item it has room for, or the best item overall
// when every slot is full. Equal best items are settled by one draw from Rand.
type GreedyPolicy struct {
	Rand Rand
}

func (p *GreedyPolicy) Pick(pool []gear.Item, holder SlotHolder) (int, error) {
	if len(pool) == 0 {
		return -1, &IllegalStateError{Op: "pick item", Reason: "item pool is empty"}
	}

	candidates := make([]int, 0, len(pool))
	for _, cat := range gear.Categories {
		if !holder.HasSlot(cat) {
			continue
		}
		for i, it := range pool {
			if it.Category() == cat {
				candidates = append(candidates, i)
			}
		}
	}
	if len(candidates) == 0 {
		for i := range pool {
			candidates = append(candidates, i)
		}
	}

	tied := candidates[:1:1]
	for _, i := range candidates[1:] {
		switch c := gear.Compare(pool[i], pool[tied[0]]); {
		case c < 0:
			tied = append(tied[:0:0], i)
		case c == 0:
			tied = append(tied, i)
		}
	}
	if len(tied) == 1 || p.Rand == nil {
		return tied[0], nil
	}
	return tied[p.Rand.Intn(len(tied))], nil
}

// ChooseItem runs the greedy policy once and returns the chosen item.
func ChooseItem(pool []gear.Item, holder SlotHolder, rng Rand) (gear.Item, error) {
	idx, err := (&GreedyPolicy{Rand: rng}).Pick(pool, holder)
	if err != nil {
		return gear.Item{}, err
	}
	return pool[idx], nil
}
