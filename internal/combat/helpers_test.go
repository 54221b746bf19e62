package combat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gear_duel/internal/gear"
)

func head(t *testing.T, prefix string, defense int) gear.Item {
	t.Helper()
	it, err := gear.NewHead(prefix, "Helmet", defense)
	require.NoError(t, err)
	return it
}

func hand(t *testing.T, prefix string, attack int) gear.Item {
	t.Helper()
	it, err := gear.NewHand(prefix, "Sword", attack)
	require.NoError(t, err)
	return it
}

func foot(t *testing.T, prefix string, attack, defense int) gear.Item {
	t.Helper()
	it, err := gear.NewFoot(prefix, "Boots", attack, defense)
	require.NoError(t, err)
	return it
}

// arenaPool is a fixed 20 item pool whose outcome does not depend on how ties
// are broken.
func arenaPool(t *testing.T) []gear.Item {
	t.Helper()
	return []gear.Item{
		head(t, "adj1", 10),
		hand(t, "adj1", 5),
		foot(t, "adj1", 0, 5),
		head(t, "adj2", 7),
		hand(t, "adj2", 7),
		foot(t, "adj2", 3, 4),
		head(t, "adj3", 3),
		hand(t, "adj3", 7),
		foot(t, "adj3", 7, 5),
		hand(t, "adj4", 1),
		foot(t, "adj4", 8, 1),
		hand(t, "adj5", 3),
		foot(t, "adj5", 2, 1),
		hand(t, "adj6", 5),
		foot(t, "adj6", 5, 5),
		hand(t, "adj7", 8),
		foot(t, "adj7", 1, 5),
		hand(t, "adj8", 3),
		foot(t, "adj8", 6, 4),
		head(t, "adj9", 7),
	}
}

// twinPool holds ten pairs of identical items, so two identical characters
// end up with identical totals.
func twinPool(t *testing.T) []gear.Item {
	t.Helper()
	var pool []gear.Item
	for _, suffix := range []string{"a", "b"} {
		pool = append(pool,
			head(t, "steel-"+suffix, 5),
			hand(t, "sharp-"+suffix, 6),
			hand(t, "keen-"+suffix, 4),
			foot(t, "swift-"+suffix, 3, 3),
			foot(t, "light-"+suffix, 2, 1),
			hand(t, "dull-"+suffix, 2),
			foot(t, "worn-"+suffix, 1, 1),
			head(t, "cloth-"+suffix, 3),
			hand(t, "bent-"+suffix, 1),
			foot(t, "padded-"+suffix, 0, 2),
		)
	}
	return pool
}
