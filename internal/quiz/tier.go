package quiz

// Tier buckets a final percentage. Lower bounds are inclusive.
type Tier int

const (
	TierKeepPracticing Tier = iota
	TierFair
	TierGood
	TierExcellent
)

// TierFor maps a percentage to its tier.
func TierFor(pct float64) Tier {
	switch {
	case pct >= 90:
		return TierExcellent
	case pct >= 70:
		return TierGood
	case pct >= 50:
		return TierFair
	default:
		return TierKeepPracticing
	}
}

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierFair:
		return "fair"
	default:
		return "keep practicing"
	}
}

// Message is the feedback shown at the end of a play-through.
func (t Tier) Message() string {
	switch t {
	case TierExcellent:
		return "Excellent! You have a great command of English vocabulary!"
	case TierGood:
		return "Good job! You have a solid understanding of English vocabulary."
	case TierFair:
		return "Not bad! Keep practicing to improve your vocabulary skills."
	default:
		return "Keep practicing! You'll get better with time."
	}
}
