package recommend

import "strings"

// Profile is a transient description of a job seeker. Skills, Personality
// and PreferredRegions are sets; ExperienceLevel may be empty.
type Profile struct {
	Skills           []string
	Personality      []string
	PreferredRegions []string
	ExperienceLevel  string
}

// Normalize returns a copy with entries trimmed, empties dropped and
// duplicates removed. First occurrence order is kept.
func (p Profile) Normalize() Profile {
	return Profile{
		Skills:           dedupe(p.Skills),
		Personality:      dedupe(p.Personality),
		PreferredRegions: dedupe(p.PreferredRegions),
		ExperienceLevel:  strings.TrimSpace(p.ExperienceLevel),
	}
}

// SplitList parses a comma separated input field into trimmed entries.
func SplitList(s string) []string {
	return dedupe(strings.Split(s, ","))
}

func dedupe(items []string) []string {
	var out []string
	seen := make(map[string]bool, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
