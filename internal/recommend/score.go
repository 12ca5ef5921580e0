package recommend

import (
	"slices"

	"github.com/abhisek/careerlab/internal/jobs"
)

// Relevance weights.
const (
	SkillWeight  = 3
	TraitWeight  = 2
	RegionWeight = 5
	LevelWeight  = 4
)

// Match strength thresholds on the match percentage.
const (
	strongThreshold = 80
	goodThreshold   = 50
)

// Strength is the display bucket of a match percentage.
type Strength int

const (
	StrengthFair Strength = iota
	StrengthGood
	StrengthStrong
)

func (s Strength) String() string {
	switch s {
	case StrengthStrong:
		return "Strong Match"
	case StrengthGood:
		return "Good Match"
	default:
		return "Fair Match"
	}
}

// Match pairs a posting with its relevance score.
type Match struct {
	Posting jobs.Posting
	Score   int
}

// Percentage is the display match percentage for the score.
func (m Match) Percentage() int {
	return MatchPercentage(m.Score)
}

// Strength is the display bucket for the score.
func (m Match) Strength() Strength {
	return StrengthFor(m.Percentage())
}

// Score computes the relevance of a posting for a profile. Each user skill
// found in the posting's technical skills adds SkillWeight, each user trait
// found in its preferred traits adds TraitWeight, a preferred region adds
// RegionWeight and an equal experience level adds LevelWeight.
func Score(p jobs.Posting, profile Profile) int {
	score := 0
	for _, skill := range profile.Skills {
		if p.HasSkill(skill) {
			score += SkillWeight
		}
	}
	for _, trait := range profile.Personality {
		if p.HasTrait(trait) {
			score += TraitWeight
		}
	}
	if slices.Contains(profile.PreferredRegions, p.Region) {
		score += RegionWeight
	}
	if profile.ExperienceLevel != "" && p.ExperienceLevel == profile.ExperienceLevel {
		score += LevelWeight
	}
	return score
}

// Rank scores every posting and orders them by descending score. The sort
// is stable, so equal scores keep their input order.
func Rank(postings []jobs.Posting, profile Profile) []Match {
	matches := make([]Match, len(postings))
	for i, p := range postings {
		matches[i] = Match{Posting: p, Score: Score(p, profile)}
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return b.Score - a.Score
	})
	return matches
}

// MatchPercentage maps a score to min(score*5, 100).
func MatchPercentage(score int) int {
	return min(score*5, 100)
}

// StrengthFor buckets a match percentage.
func StrengthFor(pct int) Strength {
	switch {
	case pct >= strongThreshold:
		return StrengthStrong
	case pct >= goodThreshold:
		return StrengthGood
	default:
		return StrengthFair
	}
}
