package gear

import (
	"fmt"
	"strings"
)

// Category is the equipment slot family an item belongs to.
type Category uint8

const (
	Unknown Category = iota
	Head
	Hand
	Foot
)

// Categories lists every equippable category in slot order.
var Categories = []Category{Head, Hand, Foot}

func (c Category) String() string {
	switch c {
	case Head:
		return "head"
	case Hand:
		return "hand"
	case Foot:
		return "foot"
	}
	return "unknown"
}

// Valid reports whether c is one of the equippable categories.
func (c Category) Valid() bool { return c == Head || c == Hand || c == Foot }

// Capacity is the number of slots a character has for the category.
func (c Category) Capacity() int {
	switch c {
	case Head:
		return 1
	case Hand, Foot:
		return 2
	}
	return 0
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head", "headgear", "helmet":
		return Head, nil
	case "hand", "handgear", "glove":
		return Hand, nil
	case "foot", "footgear", "boot":
		return Foot, nil
	}
	return Unknown, fmt.Errorf("unknown gear category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal gear category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
