package stats

// ModOp defines how a Modifier is applied.
type ModOp string

const (
	OpAdd ModOp = "add" // Additive bonus (e.g. +40 critical damage)
	OpMul ModOp = "mul" // Multiplicative factor (e.g. x1.2 strength)
)

// Modifier is a single stat modification. A skill effect is an ordered list
// of modifiers, so it can be stored and compared as plain data.
type Modifier struct {
	Stat  StatType `json:"stat" yaml:"stat"`
	Op    ModOp    `json:"op" yaml:"op"`
	Value float64  `json:"value" yaml:"value"`
}

// Apply returns s with the modifier applied. Unknown ops leave s unchanged.
func (m Modifier) Apply(s Stats) Stats {
	switch m.Op {
	case OpAdd:
		return s.Add(m.Stat, m.Value)
	case OpMul:
		return s.With(m.Stat, s.Get(m.Stat)*m.Value)
	default:
		return s
	}
}

// Apply applies mods in order and returns the result. s itself is not modified.
func Apply(s Stats, mods []Modifier) Stats {
	for _, m := range mods {
		s = m.Apply(s)
	}
	return s
}
