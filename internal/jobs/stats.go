package jobs

import "sort"

// Count is one bar of an aggregate chart.
type Count struct {
	Label string
	Count int
}

// Overview is the headline of the market statistics.
type Overview struct {
	Total         int
	AverageSalary int
	TopCluster    string
}

// DefaultTopSkills is the number of skills shown in the skill-demand chart.
const DefaultTopSkills = 10

// Summarize computes the headline statistics. An empty table yields a zero
// Overview.
func Summarize(postings []Posting) Overview {
	if len(postings) == 0 {
		return Overview{}
	}

	var total int
	for _, p := range postings {
		total += p.Salary
	}

	ov := Overview{
		Total:         len(postings),
		AverageSalary: total / len(postings),
	}
	if clusters := CountByCluster(postings); len(clusters) > 0 {
		ov.TopCluster = clusters[0].Label
	}
	return ov
}

// CountByCluster counts postings per career cluster.
func CountByCluster(postings []Posting) []Count {
	return countBy(postings, func(p Posting) []string { return []string{p.Cluster} })
}

// CountByExperience counts postings per experience level.
func CountByExperience(postings []Posting) []Count {
	return countBy(postings, func(p Posting) []string { return []string{p.ExperienceLevel} })
}

// TopSkills returns the n most frequent technical skills across all
// postings. n <= 0 returns every skill.
func TopSkills(postings []Posting, n int) []Count {
	counts := countBy(postings, func(p Posting) []string { return p.TechnicalSkills })
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// countBy tallies the labels produced by key, ordered by count descending
// and then label ascending.
func countBy(postings []Posting, key func(Posting) []string) []Count {
	tally := make(map[string]int)
	for _, p := range postings {
		for _, label := range key(p) {
			if label == "" {
				continue
			}
			tally[label]++
		}
	}

	counts := make([]Count, 0, len(tally))
	for label, n := range tally {
		counts = append(counts, Count{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}
