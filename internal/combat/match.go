package combat

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"gear_duel/internal/gear"
)

const (
	Turns    = 10
	Players  = 2
	PoolSize = Turns * Players
)

type Stage int

const (
	StageNotStarted Stage = iota
	StageRunning
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageRunning:
		return "running"
	case StageFinished:
		return "finished"
	}
	return "not_started"
}

// Outcome values match the player number of the winner; zero is a tie.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayerOne
	OutcomePlayerTwo
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerOne:
		return "player_one"
	case OutcomePlayerTwo:
		return "player_two"
	}
	return "tie"
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

type Pick struct {
	Turn     int    `json:"turn"`
	Player   string `json:"player"`
	Category string `json:"category"`
	Item     string `json:"item"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	Merged   bool   `json:"merged"`
}

type PlayerResult struct {
	Name         string `json:"name"`
	TotalAttack  int    `json:"total_attack"`
	TotalDefense int    `json:"total_defense"`
	Damage       int    `json:"damage"`
}

type Result struct {
	MatchID string          `json:"match_id"`
	Turns   int             `json:"turns"`
	Players [2]PlayerResult `json:"players"`
	Outcome Outcome         `json:"outcome"`
	Winner  string          `json:"winner,omitempty"`
	Picks   []Pick          `json:"picks,omitempty"`
}

type Option func(*Match)

func WithPolicy(p Policy) Option { return func(m *Match) { m.policy = p } }

// WithRand uses the greedy policy with rng as its tie-break source.
func WithRand(rng Rand) Option {
	return func(m *Match) { m.policy = &GreedyPolicy{Rand: rng} }
}

func WithLogger(l *slog.Logger) Option { return func(m *Match) { m.log = l } }

func WithEmitter(emit func(Event)) Option { return func(m *Match) { m.emit = emit } }

func WithID(id string) Option { return func(m *Match) { m.id = id } }

// Match plays a fixed number of turns in which two combatants take items from
// a shared pool. Player one always picks before player two within a turn.
type Match struct {
	id      string
	players [2]Combatant
	pool    []gear.Item
	policy  Policy
	log     *slog.Logger
	emit    func(Event)

	stage Stage
	turn  int
	picks []Pick
}

func NewMatch(one, two Combatant, pool []gear.Item, opts ...Option) (*Match, error) {
	if one == nil || two == nil {
		return nil, &ConfigurationError{Reason: "both combatants are required"}
	}
	if len(pool) != PoolSize {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("item pool must hold exactly %d items, got %d", PoolSize, len(pool))}
	}
	for i, it := range pool {
		if !it.Category().Valid() {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("item %d has no gear category", i)}
		}
	}

	m := &Match{
		players: [2]Combatant{one, two},
		pool:    append([]gear.Item(nil), pool...),
		log:     slog.Default(),
		emit:    func(Event) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.policy == nil {
		m.policy = &GreedyPolicy{}
	}
	m.log = m.log.With(slog.String("match_id", m.id))
	return m, nil
}

func (m *Match) ID() string             { return m.id }
func (m *Match) Stage() Stage           { return m.stage }
func (m *Match) Turn() int              { return m.turn }
func (m *Match) Remaining() []gear.Item { return append([]gear.Item(nil), m.pool...) }

// PlayTurn plays the next turn: player one picks, equips and drops the item
// from the pool, then player two does the same with what is left.
func (m *Match) PlayTurn() error {
	if m.stage == StageFinished {
		return &IllegalStateError{Op: "play turn", Reason: "match already finished"}
	}
	m.stage = StageRunning
	m.turn++
	for _, p := range m.players {
		if err := m.takeItem(p); err != nil {
			return fmt.Errorf("turn %d: %w", m.turn, err)
		}
	}
	if m.turn >= Turns {
		m.stage = StageFinished
	}
	return nil
}

// Run plays every remaining turn and returns the result.
func (m *Match) Run() (Result, error) {
	if m.stage == StageFinished {
		return Result{}, &IllegalStateError{Op: "run match", Reason: "match already finished"}
	}
	for m.stage != StageFinished {
		if err := m.PlayTurn(); err != nil {
			return Result{}, err
		}
	}
	res := m.Result()
	m.emit(Event{Turn: m.turn, Type: EventResult, Payload: map[string]any{
		"outcome": res.Outcome.String(), "winner": res.Winner,
		"damage_one": res.Players[0].Damage, "damage_two": res.Players[1].Damage,
	}})
	m.log.Info("match finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("damage_one", res.Players[0].Damage),
		slog.Int("damage_two", res.Players[1].Damage))
	return res, nil
}

func (m *Match) takeItem(p Combatant) error {
	idx, err := m.policy.Pick(m.pool, p)
	if err != nil {
		return err
	}
	item := m.pool[idx]
	m.pool = append(m.pool[:idx], m.pool[idx+1:]...)
	merged := p.Equip(item)

	m.picks = append(m.picks, Pick{
		Turn: m.turn, Player: p.Name(), Category: item.Category().String(),
		Item: item.Prefix() + " " + item.Name(), Attack: item.Attack(), Defense: item.Defense(),
		Merged: merged,
	})
	m.emit(Event{Turn: m.turn, Type: EventPick, Payload: map[string]any{
		"player": p.Name(), "category": item.Category().String(), "prefix": item.Prefix(),
		"name": item.Name(), "attack": item.Attack(), "defense": item.Defense(),
	}})
	m.log.Debug("item picked",
		slog.Int("turn", m.turn),
		slog.String("player", p.Name()),
		slog.String("item", item.String()))
	if merged {
		m.emit(Event{Turn: m.turn, Type: EventMerge, Payload: map[string]any{
			"player": p.Name(), "category": item.Category().String(),
		}})
		m.log.Debug("item merged", slog.String("player", p.Name()), slog.String("category", item.Category().String()))
	}
	return nil
}

// Result computes the outcome from the current totals.
func (m *Match) Result() Result {
	one, two := m.players[0], m.players[1]
	d1, d2 := Damage(one, two), Damage(two, one)
	res := Result{
		MatchID: m.id,
		Turns:   m.turn,
		Players: [2]PlayerResult{
			{Name: one.Name(), TotalAttack: one.TotalAttack(), TotalDefense: one.TotalDefense(), Damage: d1},
			{Name: two.Name(), TotalAttack: two.TotalAttack(), TotalDefense: two.TotalDefense(), Damage: d2},
		},
		Outcome: Decide(d1, d2),
		Picks:   append([]Pick(nil), m.picks...),
	}
	switch res.Outcome {
	case OutcomePlayerOne:
		res.Winner = one.Name()
	case OutcomePlayerTwo:
		res.Winner = two.Name()
	}
	return res
}

// Damage is what attacker deals to defender: total attack less the defender's
// total defense, never below zero.
func Damage(attacker, defender Combatant) int {
	return max(0, attacker.TotalAttack()-defender.TotalDefense())
}

func Decide(damageOne, damageTwo int) Outcome {
	switch {
	case damageOne > damageTwo:
		return OutcomePlayerOne
	case damageTwo > damageOne:
		return OutcomePlayerTwo
	}
	return OutcomeTie
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
