package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gear_duel/internal/combat"
)

func sampleResult(outcome combat.Outcome) combat.Result {
	return combat.Result{
		Outcome: outcome,
		Players: [2]combat.PlayerResult{{Damage: 3}, {Damage: 11}},
		Picks: []combat.Pick{
			{Category: "hand"},
			{Category: "hand"},
			{Category: "hand", Merged: true},
			{Category: "head"},
		},
	}
}

func TestRecorderObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Observe(sampleResult(combat.OutcomePlayerTwo))
	r.Observe(sampleResult(combat.OutcomeTie))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.Matches.WithLabelValues("player_two")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Matches.WithLabelValues("tie")))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.Picks.WithLabelValues("hand")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Merges.WithLabelValues("hand")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.Damage))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.Observe(sampleResult(combat.OutcomePlayerOne))
	path := filepath.Join(t.TempDir(), "duel.prom")

	require.NoError(t, WriteTextfile(path, reg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `gear_duel_matches_total{outcome="player_one"} 1`)
	assert.Contains(t, string(b), "gear_duel_damage_bucket")
}
