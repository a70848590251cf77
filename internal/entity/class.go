// Package entity provides the adventurer and the enemies it fights.
package entity

// Class represents an adventurer's class.
type Class int

const (
	ClassSwordsman Class = iota
	ClassMage
	ClassRogue
)

// Classes returns all playable classes in selection order.
func Classes() []Class {
	return []Class{ClassSwordsman, ClassMage, ClassRogue}
}

// String returns the class identifier used in log lines and data lookup.
func (c Class) String() string {
	return c.ID()
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassSwordsman:
		return "swordsman"
	case ClassMage:
		return "mage"
	case ClassRogue:
		return "rogue"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a playable class.
func (c Class) Valid() bool {
	return c >= ClassSwordsman && c <= ClassRogue
}
