package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gear_duel/internal/combat"
)

const (
	Namespace = "gear_duel"

	LabelOutcome  = "outcome"
	LabelCategory = "category"
	LabelSeat     = "seat"
)

var DamageBuckets = prometheus.LinearBuckets(0, 5, 12)

// Recorder counts duel results on the registry it was created with.
type Recorder struct {
	Matches *prometheus.CounterVec
	Picks   *prometheus.CounterVec
	Merges  *prometheus.CounterVec
	Damage  *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		Matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "matches_total",
			Help:      "Finished duels by outcome.",
		}, []string{LabelOutcome}),
		Picks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "picks_total",
			Help:      "Items taken from the pool by category.",
		}, []string{LabelCategory}),
		Merges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "merges_total",
			Help:      "Picks that merged into an occupied slot, by category.",
		}, []string{LabelCategory}),
		Damage: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "damage",
			Help:      "Final damage dealt by each seat.",
			Buckets:   DamageBuckets,
		}, []string{LabelSeat}),
	}
}

func (r *Recorder) Observe(res combat.Result) {
	r.Matches.WithLabelValues(res.Outcome.String()).Inc()
	for _, p := range res.Picks {
		r.Picks.WithLabelValues(p.Category).Inc()
		if p.Merged {
			r.Merges.WithLabelValues(p.Category).Inc()
		}
	}
	r.Damage.WithLabelValues("player_one").Observe(float64(res.Players[0].Damage))
	r.Damage.WithLabelValues("player_two").Observe(float64(res.Players[1].Damage))
}

// WriteTextfile dumps g in the text exposition format, for the node
// exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
