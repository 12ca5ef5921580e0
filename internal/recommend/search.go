package recommend

import (
	"errors"
	"slices"

	"github.com/abhisek/careerlab/internal/jobs"
)

// DefaultLimit is the number of matches shown when Filter.Limit is unset.
const DefaultLimit = 10

// ErrNoSkills is returned by Search when the profile lists no skills.
var ErrNoSkills = errors.New("select at least one skill to find matching jobs")

// Filter narrows ranked matches. Zero values disable a criterion.
type Filter struct {
	// WorkArrangements keeps postings whose arrangement is listed.
	WorkArrangements []string
	// MinSalary keeps postings paying at least this much.
	MinSalary int
	// Limit caps the number of returned matches.
	Limit int
}

func (f Filter) keep(p jobs.Posting) bool {
	if len(f.WorkArrangements) > 0 && !slices.Contains(f.WorkArrangements, p.WorkArrangement) {
		return false
	}
	if f.MinSalary > 0 && p.Salary < f.MinSalary {
		return false
	}
	return true
}

// Result is the outcome of a search.
type Result struct {
	// Total is the number of postings left after filtering, before Limit.
	Total int
	// Matches holds at most Limit matches in rank order.
	Matches []Match
}

// Empty reports whether nothing matched.
func (r *Result) Empty() bool {
	return r.Total == 0
}

// Search ranks postings against the profile, then applies the filter.
func Search(postings []jobs.Posting, profile Profile, filter Filter) (*Result, error) {
	profile = profile.Normalize()
	if len(profile.Skills) == 0 {
		return nil, ErrNoSkills
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var kept []Match
	for _, m := range Rank(postings, profile) {
		if filter.keep(m.Posting) {
			kept = append(kept, m)
		}
	}

	return &Result{
		Total:   len(kept),
		Matches: kept[:min(limit, len(kept))],
	}, nil
}
