package combat

//go:generate mockgen -destination=mock/mock_types.go -package=mockcombat -source=types.go

import "gear_duel/internal/gear"

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventPick   = "Pick"
	EventMerge  = "Merge"
	EventResult = "Result"
)

// SlotHolder is what a selection policy needs to know about a character.
type SlotHolder interface {
	HasSlot(c gear.Category) bool
}

// Combatant is a participant in a match.
type Combatant interface {
	SlotHolder
	Name() string
	Equip(item gear.Item) bool
	TotalAttack() int
	TotalDefense() int
}

// Rand is the random source used to break selection ties. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}
