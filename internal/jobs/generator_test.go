package jobs

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerlab/internal/taxonomy"
)

var fixedNow = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func testGenerator(seed uint64) *Generator {
	return NewGenerator(
		rand.New(rand.NewPCG(seed, seed+1)),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestGenerate_ExactCountAndSequentialIDs(t *testing.T) {
	for _, n := range []int{0, 1, 7, 250} {
		postings := testGenerator(1).Generate(n)
		require.Len(t, postings, n, "n=%d", n)
		for i, p := range postings {
			assert.Equal(t, i+1, p.ID, "n=%d index=%d", n, i)
		}
	}
}

func TestGenerate_NegativeCountIsEmpty(t *testing.T) {
	postings := testGenerator(1).Generate(-3)
	assert.NotNil(t, postings)
	assert.Empty(t, postings)
}

func TestGenerate_SalaryWithinLevelBound(t *testing.T) {
	for _, p := range testGenerator(2).Generate(500) {
		r, ok := taxonomy.SalaryRangeFor(p.ExperienceLevel)
		require.True(t, ok, "unknown level %q", p.ExperienceLevel)
		assert.True(t, r.Contains(p.Salary), "job %d: salary %d outside %+v", p.ID, p.Salary, r)
	}
}

func TestGenerate_FieldsDrawnFromTaxonomies(t *testing.T) {
	for _, p := range testGenerator(3).Generate(300) {
		assert.Contains(t, taxonomy.Titles(p.Cluster), p.Title)
		assert.Contains(t, taxonomy.Cities(p.Region), p.City)
		assert.Contains(t, taxonomy.EducationLevels(), p.Education)
		assert.Contains(t, taxonomy.WorkArrangements(), p.WorkArrangement)
		assert.Contains(t, taxonomy.CompanySizes(), p.CompanySize)
		assert.Contains(t, taxonomy.IndustryGrowth(), p.IndustryGrowth)
		assert.Equal(t, CompanyName(p.ID), p.Company)
	}
}

func TestGenerate_SkillSetsSampledWithoutReplacement(t *testing.T) {
	for _, p := range testGenerator(4).Generate(300) {
		pool := taxonomy.TechnicalSkills(p.Cluster)
		assert.GreaterOrEqual(t, len(p.TechnicalSkills), 3)
		assert.LessOrEqual(t, len(p.TechnicalSkills), 6)
		assertSubsetNoDuplicates(t, p.TechnicalSkills, pool)

		assert.GreaterOrEqual(t, len(p.SoftSkills), 2)
		assert.LessOrEqual(t, len(p.SoftSkills), 4)
		assertSubsetNoDuplicates(t, p.SoftSkills, taxonomy.SoftSkills())

		assert.GreaterOrEqual(t, len(p.PreferredTraits), 2)
		assert.LessOrEqual(t, len(p.PreferredTraits), 3)
		assertSubsetNoDuplicates(t, p.PreferredTraits, taxonomy.PersonalityTraits())
	}
}

func TestGenerate_EngagementMetrics(t *testing.T) {
	for _, p := range testGenerator(5).Generate(300) {
		assert.GreaterOrEqual(t, p.Applications, 10)
		assert.LessOrEqual(t, p.Applications, 500)

		require.Zero(t, p.Views%p.Applications, "views must be a multiple of applications")
		mult := p.Views / p.Applications
		assert.GreaterOrEqual(t, mult, 5)
		assert.LessOrEqual(t, mult, 15)

		assert.GreaterOrEqual(t, p.SaveRate, 0.05)
		assert.LessOrEqual(t, p.SaveRate, 0.4)
		assert.InDelta(t, p.SaveRate, math.Round(p.SaveRate*100)/100, 1e-9)
	}
}

func TestGenerate_PostingDateWithinLastMonth(t *testing.T) {
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	for _, p := range testGenerator(6).Generate(300) {
		age := int(today.Sub(p.PostedAt).Hours() / 24)
		assert.GreaterOrEqual(t, age, 1, "job %d posted %s", p.ID, p.PostedAt)
		assert.LessOrEqual(t, age, MaxPostingAgeDays, "job %d posted %s", p.ID, p.PostedAt)
		assert.Zero(t, p.PostedAt.Hour())
	}
}

func TestGenerate_DescriptionTemplate(t *testing.T) {
	p := testGenerator(7).Generate(1)[0]
	want := Describe(p.ExperienceLevel, p.Title, p.TechnicalSkills, p.SoftSkills, p.PreferredTraits)
	assert.Equal(t, want, p.Description)
	assert.Contains(t, p.Description, "This is a "+p.ExperienceLevel+" "+p.Title+" position")
}

func TestGenerate_SameSeedSameTable(t *testing.T) {
	a := testGenerator(42).Generate(50)
	b := testGenerator(42).Generate(50)
	assert.Equal(t, a, b)
}

func assertSubsetNoDuplicates(t *testing.T, got, pool []string) {
	t.Helper()
	seen := make(map[string]bool, len(got))
	for _, s := range got {
		assert.Contains(t, pool, s)
		assert.False(t, seen[s], "duplicate %q in %v", s, got)
		seen[s] = true
	}
}
