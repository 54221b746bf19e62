package combat_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gear_duel/internal/combat"
	mockcombat "gear_duel/internal/combat/mock"
	"gear_duel/internal/gear"
)

func TestGreedyPolicy_PicksBestWithFreeSlot(t *testing.T) {
	pool := []gear.Item{
		head(t, "iron", 9),
		hand(t, "dull", 2),
		foot(t, "swift", 4, 1),
		hand(t, "sharp", 6),
	}
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)

	got, err := combat.ChooseItem(pool, c, nil)

	require.NoError(t, err)
	assert.Equal(t, "sharp", got.Prefix())
}

func TestGreedyPolicy_SkipsFullCategories(t *testing.T) {
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)
	c.Equip(hand(t, "a", 1))
	c.Equip(hand(t, "b", 1))

	pool := []gear.Item{
		hand(t, "sharp", 9),
		head(t, "iron", 3),
		foot(t, "swift", 2, 0),
	}

	got, err := combat.ChooseItem(pool, c, nil)

	require.NoError(t, err)
	assert.Equal(t, "swift", got.Prefix(), "attack outranks defense among open slots")
}

func TestGreedyPolicy_DefenseBreaksAttackTie(t *testing.T) {
	pool := []gear.Item{
		foot(t, "thin", 3, 1),
		hand(t, "sharp", 3),
		foot(t, "thick", 3, 4),
	}
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)

	got, err := combat.ChooseItem(pool, c, nil)

	require.NoError(t, err)
	assert.Equal(t, "thick", got.Prefix())
}

func TestGreedyPolicy_FallsBackToWholePool(t *testing.T) {
	ctrl := gomock.NewController(t)
	holder := mockcombat.NewMockSlotHolder(ctrl)
	holder.EXPECT().HasSlot(gomock.Any()).Return(false).AnyTimes()

	pool := []gear.Item{
		head(t, "iron", 9),
		hand(t, "sharp", 4),
		foot(t, "swift", 1, 1),
	}

	got, err := combat.ChooseItem(pool, holder, nil)

	require.NoError(t, err)
	assert.Equal(t, "sharp", got.Prefix())
}

func TestGreedyPolicy_EmptyPool(t *testing.T) {
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)

	_, err := combat.ChooseItem(nil, c, rand.New(rand.NewSource(1)))

	var stateErr *combat.IllegalStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "pick item", stateErr.Op)
}

func TestGreedyPolicy_TieDrawsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mockcombat.NewMockRand(ctrl)
	rng.EXPECT().Intn(3).Return(2).Times(1)

	pool := []gear.Item{
		hand(t, "first", 7),
		hand(t, "weak", 1),
		hand(t, "second", 7),
		head(t, "iron", 9),
		hand(t, "third", 7),
	}
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)
	c.Equip(head(t, "cap", 1))

	idx, err := (&combat.GreedyPolicy{Rand: rng}).Pick(pool, c)

	require.NoError(t, err)
	assert.Equal(t, 4, idx)
	assert.Equal(t, "third", pool[idx].Prefix())
}

func TestGreedyPolicy_NoDrawWithoutTie(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mockcombat.NewMockRand(ctrl)
	rng.EXPECT().Intn(gomock.Any()).Times(0)

	pool := []gear.Item{
		hand(t, "first", 7),
		hand(t, "best", 8),
		foot(t, "swift", 7, 9),
	}
	c := combat.NewCharacter("p", 2, 2, combat.InitFromBase)

	got, err := combat.ChooseItem(pool, c, rng)

	require.NoError(t, err)
	assert.Equal(t, "best", got.Prefix())
}

func TestGreedyPolicy_AlwaysPicksFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cats := []gear.Category{gear.Head, gear.Hand, gear.Foot}

	for round := 0; round < 200; round++ {
		size := 1 + rng.Intn(12)
		pool := make([]gear.Item, 0, size)
		for i := 0; i < size; i++ {
			it, err := gear.New(cats[rng.Intn(len(cats))], "Thing", "p", rng.Intn(4), rng.Intn(4))
			require.NoError(t, err)
			pool = append(pool, it)
		}
		c := combat.NewCharacter("p", 0, 0, combat.InitFromBase)
		equipped := rng.Intn(6)
		for i := 0; i < equipped; i++ {
			c.Equip(pool[rng.Intn(len(pool))])
		}

		got, err := combat.ChooseItem(pool, c, rng)

		require.NoError(t, err)
		assert.True(t, slices.Contains(pool, got))
		for _, other := range pool {
			if c.HasSlot(got.Category()) == c.HasSlot(other.Category()) {
				assert.LessOrEqual(t, gear.Compare(got, other), 0)
			}
		}
	}
}
