package combat

import (
	"fmt"
	"strings"

	"gear_duel/internal/gear"
)

// StatInit selects what a character's running totals start from.
type StatInit int

const (
	InitFromBase StatInit = iota
	InitFromZero
)

func (s StatInit) String() string {
	if s == InitFromZero {
		return "zero"
	}
	return "base"
}

func ParseStatInit(s string) (StatInit, error) {
	switch strings.ToLower(s) {
	case "", "base":
		return InitFromBase, nil
	case "zero":
		return InitFromZero, nil
	}
	return InitFromBase, fmt.Errorf("unknown stat init %q (want base or zero)", s)
}

type Character struct {
	name        string
	baseAttack  int
	baseDefense int

	totalAttack  int
	totalDefense int

	head  *gear.Item
	hands []gear.Item
	feet  []gear.Item
}

func NewCharacter(name string, baseAttack, baseDefense int, init StatInit) *Character {
	c := &Character{
		name:        name,
		baseAttack:  baseAttack,
		baseDefense: baseDefense,
		hands:       make([]gear.Item, 0, gear.Hand.Capacity()),
		feet:        make([]gear.Item, 0, gear.Foot.Capacity()),
	}
	if init == InitFromBase {
		c.totalAttack = baseAttack
		c.totalDefense = baseDefense
	}
	return c
}

func (c *Character) Name() string        { return c.name }
func (c *Character) SetName(name string) { c.name = name }
func (c *Character) BaseAttack() int     { return c.baseAttack }
func (c *Character) BaseDefense() int    { return c.baseDefense }
func (c *Character) TotalAttack() int    { return c.totalAttack }
func (c *Character) TotalDefense() int   { return c.totalDefense }

func (c *Character) HasHeadSlot() bool { return c.head == nil }
func (c *Character) HasHandSlot() bool { return len(c.hands) < gear.Hand.Capacity() }
func (c *Character) HasFootSlot() bool { return len(c.feet) < gear.Foot.Capacity() }

func (c *Character) HasSlot(cat gear.Category) bool {
	switch cat {
	case gear.Head:
		return c.HasHeadSlot()
	case gear.Hand:
		return c.HasHandSlot()
	case gear.Foot:
		return c.HasFootSlot()
	}
	return false
}

// Head returns the equipped head item, if any.
func (c *Character) Head() (gear.Item, bool) {
	if c.head == nil {
		return gear.Item{}, false
	}
	return *c.head, true
}

func (c *Character) Hands() []gear.Item { return append([]gear.Item(nil), c.hands...) }
func (c *Character) Feet() []gear.Item  { return append([]gear.Item(nil), c.feet...) }

// Equip puts item into a free slot of its category, or merges it into the
// first occupant when the category is full. Totals grow by the raw item stats
// either way. It reports whether a merge happened.
func (c *Character) Equip(item gear.Item) bool {
	merged := false
	switch item.Category() {
	case gear.Head:
		if c.HasHeadSlot() {
			c.head = &item
		} else {
			m := c.head.Merge(item)
			c.head = &m
			merged = true
		}
	case gear.Hand:
		c.hands, merged = equipInto(c.hands, item)
	case gear.Foot:
		c.feet, merged = equipInto(c.feet, item)
	}
	c.totalAttack += item.Attack()
	c.totalDefense += item.Defense()
	return merged
}

func equipInto(slots []gear.Item, item gear.Item) ([]gear.Item, bool) {
	if len(slots) < item.Category().Capacity() {
		return append(slots, item), false
	}
	slots[0] = slots[0].Merge(item)
	return slots, true
}

func (c *Character) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Character: %s\n", c.name)
	fmt.Fprintf(&b, "  base attack=%d defense=%d\n", c.baseAttack, c.baseDefense)
	fmt.Fprintf(&b, "  total attack=%d defense=%d\n", c.totalAttack, c.totalDefense)
	if c.head != nil {
		fmt.Fprintf(&b, "  head: %s\n", c.head)
	} else {
		b.WriteString("  head: -\n")
	}
	writeSlots(&b, "hand", c.hands)
	writeSlots(&b, "foot", c.feet)
	return b.String()
}

func writeSlots(b *strings.Builder, label string, items []gear.Item) {
	if len(items) == 0 {
		fmt.Fprintf(b, "  %s: -\n", label)
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "  %s: %s\n", label, it)
	}
}
