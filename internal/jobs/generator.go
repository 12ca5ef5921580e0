package jobs

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/careerlab/internal/taxonomy"
)

const (
	minTechnicalSkills = 3
	maxTechnicalSkills = 6
	minSoftSkills      = 2
	maxSoftSkills      = 4
	minTraits          = 2
	maxTraits          = 3

	minApplications   = 10
	maxApplications   = 500
	minViewMultiplier = 5
	maxViewMultiplier = 15
	minSaveRate       = 0.05
	maxSaveRate       = 0.4

	// MaxPostingAgeDays bounds how far back a posting date can lie.
	MaxPostingAgeDays = 30
)

// DefaultJobCount is the size of the generated dataset.
const DefaultJobCount = 1000

// Generator produces synthetic job postings from the static taxonomies.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for posting dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator drawing from rng.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{
		rng: rng,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly n postings with ids 1..n. n <= 0 yields an
// empty slice.
func (g *Generator) Generate(n int) []Posting {
	if n <= 0 {
		return []Posting{}
	}

	today := truncateToDate(g.now())
	postings := make([]Posting, 0, n)
	for id := 1; id <= n; id++ {
		postings = append(postings, g.posting(id, today))
	}
	return postings
}

func (g *Generator) posting(id int, today time.Time) Posting {
	cluster := g.pick(taxonomy.Clusters())
	title := g.pick(taxonomy.Titles(cluster))

	level := g.pick(taxonomy.ExperienceLevels())
	salaryRange, _ := taxonomy.SalaryRangeFor(level)
	salary := g.between(salaryRange.Min, salaryRange.Max)

	region := g.pick(taxonomy.Regions())
	city := g.pick(taxonomy.Cities(region))

	var technical []string
	if pool := taxonomy.TechnicalSkills(cluster); len(pool) > 0 {
		technical = g.sample(pool, g.between(minTechnicalSkills, maxTechnicalSkills))
	}
	soft := g.sample(taxonomy.SoftSkills(), g.between(minSoftSkills, maxSoftSkills))
	traits := g.sample(taxonomy.PersonalityTraits(), g.between(minTraits, maxTraits))

	education := g.pick(taxonomy.EducationLevels())
	arrangement := g.pick(taxonomy.WorkArrangements())
	size := g.pick(taxonomy.CompanySizes())
	growth := g.pick(taxonomy.IndustryGrowth())

	applications := g.between(minApplications, maxApplications)
	views := applications * g.between(minViewMultiplier, maxViewMultiplier)
	saveRate := roundTo2(minSaveRate + g.rng.Float64()*(maxSaveRate-minSaveRate))

	return Posting{
		ID:              id,
		Title:           title,
		Cluster:         cluster,
		Company:         CompanyName(id),
		Region:          region,
		City:            city,
		Salary:          salary,
		ExperienceLevel: level,
		Education:       education,
		TechnicalSkills: technical,
		SoftSkills:      soft,
		PreferredTraits: traits,
		WorkArrangement: arrangement,
		CompanySize:     size,
		IndustryGrowth:  growth,
		PostedAt:        today.AddDate(0, 0, -g.between(1, MaxPostingAgeDays)),
		Applications:    applications,
		Views:           views,
		SaveRate:        saveRate,
		Description:     Describe(level, title, technical, soft, traits),
	}
}

// pick returns a uniformly chosen element, or "" for an empty list.
func (g *Generator) pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[g.rng.IntN(len(items))]
}

// between returns a uniform integer in the inclusive range [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// sample draws k distinct elements without replacement, capped at len(pool).
func (g *Generator) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
