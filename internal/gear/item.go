package gear

import (
	"cmp"
	"fmt"
)

// InvalidStatError is returned when an item is built with a negative stat.
type InvalidStatError struct {
	Category Category
	Stat     string
	Value    int
}

func (e *InvalidStatError) Error() string {
	return fmt.Sprintf("invalid %s gear: %s stat must be non-negative, got %d", e.Category, e.Stat, e.Value)
}

// Item is a piece of equipment. Items are values: Merge returns a new Item and
// never touches its inputs.
type Item struct {
	category Category
	name     string
	prefix   string
	attack   int
	defense  int
}

// NewHead builds a head item. Head gear only carries defense.
func NewHead(prefix, name string, defense int) (Item, error) {
	if defense < 0 {
		return Item{}, &InvalidStatError{Category: Head, Stat: "defense", Value: defense}
	}
	return Item{category: Head, name: name, prefix: prefix, defense: defense}, nil
}

// NewHand builds a hand item. Hand gear only carries attack.
func NewHand(prefix, name string, attack int) (Item, error) {
	if attack < 0 {
		return Item{}, &InvalidStatError{Category: Hand, Stat: "attack", Value: attack}
	}
	return Item{category: Hand, name: name, prefix: prefix, attack: attack}, nil
}

func NewFoot(prefix, name string, attack, defense int) (Item, error) {
	if attack < 0 {
		return Item{}, &InvalidStatError{Category: Foot, Stat: "attack", Value: attack}
	}
	if defense < 0 {
		return Item{}, &InvalidStatError{Category: Foot, Stat: "defense", Value: defense}
	}
	return Item{category: Foot, name: name, prefix: prefix, attack: attack, defense: defense}, nil
}

// New dispatches to the category constructor. A stat the category does not
// carry is ignored.
func New(c Category, name, prefix string, attack, defense int) (Item, error) {
	switch c {
	case Head:
		return NewHead(prefix, name, defense)
	case Hand:
		return NewHand(prefix, name, attack)
	case Foot:
		return NewFoot(prefix, name, attack, defense)
	}
	return Item{}, fmt.Errorf("new gear %q: unknown category %d", name, uint8(c))
}

func (it Item) Category() Category { return it.category }
func (it Item) Name() string       { return it.name }
func (it Item) Prefix() string     { return it.prefix }
func (it Item) Attack() int        { return it.attack }
func (it Item) Defense() int       { return it.defense }

// Merge combines other into a new item of the receiver's category. The
// receiver's name survives; prefixes are joined and stats summed.
func (it Item) Merge(other Item) Item {
	return Item{
		category: it.category,
		name:     it.name,
		prefix:   it.prefix + ", " + other.prefix,
		attack:   it.attack + other.attack,
		defense:  it.defense + other.defense,
	}
}

// Compare orders items for selection: higher attack first, then higher
// defense. It returns a negative number when a ranks above b.
func Compare(a, b Item) int {
	if c := cmp.Compare(b.attack, a.attack); c != 0 {
		return c
	}
	return cmp.Compare(b.defense, a.defense)
}

func (it Item) String() string {
	return fmt.Sprintf("%s %s (%s) -- attack: %d, defense: %d", it.prefix, it.name, it.category, it.attack, it.defense)
}
