package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gear_duel/internal/gear"
	"gear_duel/internal/generate"
	"gear_duel/internal/util"
)

func TestPool(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		pool, err := generate.Pool(util.New(seed))
		require.NoError(t, err)
		require.Len(t, pool, generate.Size)

		counts := map[gear.Category]int{}
		for i, it := range pool {
			counts[it.Category()]++
			assert.True(t, it.Category().Valid())
			assert.GreaterOrEqual(t, it.Attack(), 0)
			assert.Less(t, it.Attack(), generate.MaxStat)
			assert.GreaterOrEqual(t, it.Defense(), 0)
			assert.Less(t, it.Defense(), generate.MaxStat)
			if i < 15 {
				assert.Equal(t, gear.Categories[i%3], it.Category())
			}
		}
		for _, c := range gear.Categories {
			assert.GreaterOrEqual(t, counts[c], 5)
		}
	}
}

func TestPoolIsDeterministic(t *testing.T) {
	a, err := generate.Pool(util.New(11))
	require.NoError(t, err)
	b, err := generate.Pool(util.New(11))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPoolPrefixes(t *testing.T) {
	pool, err := generate.Pool(util.New(3))
	require.NoError(t, err)

	assert.Equal(t, "adj1", pool[0].Prefix())
	assert.Equal(t, "adj6", pool[1].Prefix())
	assert.Equal(t, "adj11", pool[2].Prefix())
	assert.Equal(t, "adj20", pool[19].Prefix())
	assert.Equal(t, "Helmet", pool[0].Name())
	assert.Equal(t, "Glove", pool[1].Name())
	assert.Equal(t, "Boot", pool[2].Name())
}
