package entity

// Mood is the adventurer's morale. Higher moods make training more effective.
type Mood int

const (
	MoodAwful Mood = iota
	MoodBad
	MoodNeutral
	MoodGood
	MoodGreat
)

// String returns the mood name.
func (m Mood) String() string {
	switch m {
	case MoodAwful:
		return "Awful"
	case MoodBad:
		return "Bad"
	case MoodNeutral:
		return "Neutral"
	case MoodGood:
		return "Good"
	case MoodGreat:
		return "Great"
	default:
		return "Unknown"
	}
}

// Modifier returns the training stat-gain modifier for the mood.
func (m Mood) Modifier() float64 {
	switch m {
	case MoodAwful:
		return -0.05
	case MoodBad:
		return -0.025
	case MoodGood:
		return 0.025
	case MoodGreat:
		return 0.05
	default:
		return 0
	}
}

// Raise returns the mood n levels higher, capped at Great.
func (m Mood) Raise(n int) Mood {
	return clampMood(m + Mood(n))
}

// Lower returns the mood n levels lower, floored at Awful.
func (m Mood) Lower(n int) Mood {
	return clampMood(m - Mood(n))
}

func clampMood(m Mood) Mood {
	if m < MoodAwful {
		return MoodAwful
	}
	if m > MoodGreat {
		return MoodGreat
	}
	return m
}

// Condition is a debuff. An adventurer carries at most one at a time.
type Condition int

const (
	// ConditionNone means no condition is active.
	ConditionNone Condition = iota
	// ConditionInjured adds 20% to the training failure rate.
	ConditionInjured
	// ConditionHexed may redirect training to a random stat.
	ConditionHexed
	// ConditionUnmotivated may skip training entirely.
	ConditionUnmotivated
)

// Conditions returns the conditions that can be rolled, in roll order.
func Conditions() []Condition {
	return []Condition{ConditionInjured, ConditionHexed, ConditionUnmotivated}
}

// String returns the condition name, or "" for ConditionNone.
func (c Condition) String() string {
	switch c {
	case ConditionInjured:
		return "Injured"
	case ConditionHexed:
		return "Hexed"
	case ConditionUnmotivated:
		return "Unmotivated"
	default:
		return ""
	}
}
