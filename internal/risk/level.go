package risk

// Level is the discrete risk classification of a score.
type Level int

// Risk levels.
const (
	NotCalculated Level = iota
	HighRisk
	ModerateRisk
	LowRisk
)

// Level thresholds.
const (
	LowRiskThreshold      = 750
	ModerateRiskThreshold = 650
)

// Affinity is the display tone of a level. It carries no data.
type Affinity int

// Display affinities.
const (
	AffinityNeutral Affinity = iota
	AffinityGood
	AffinityCaution
	AffinityDanger
)

// Classify maps a score to its level.
func Classify(s Score) Level {
	v, ok := s.Value()
	if !ok {
		return NotCalculated
	}
	return LevelFor(v)
}

// LevelFor classifies a raw integer score.
func LevelFor(score int) Level {
	switch {
	case score >= LowRiskThreshold:
		return LowRisk
	case score >= ModerateRiskThreshold:
		return ModerateRisk
	default:
		return HighRisk
	}
}

func (l Level) String() string {
	switch l {
	case LowRisk:
		return "Low Risk"
	case ModerateRisk:
		return "Moderate Risk"
	case HighRisk:
		return "High Risk"
	default:
		return "Not Calculated"
	}
}

// Affinity returns the level's display tone.
func (l Level) Affinity() Affinity {
	switch l {
	case LowRisk:
		return AffinityGood
	case ModerateRisk:
		return AffinityCaution
	case HighRisk:
		return AffinityDanger
	default:
		return AffinityNeutral
	}
}

func (a Affinity) String() string {
	switch a {
	case AffinityGood:
		return "good"
	case AffinityCaution:
		return "caution"
	case AffinityDanger:
		return "danger"
	default:
		return "neutral"
	}
}
