package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture() []Posting {
	return []Posting{
		{ID: 1, Cluster: "Technology", ExperienceLevel: "Senior", Salary: 100000, TechnicalSkills: []string{"Python", "SQL"}},
		{ID: 2, Cluster: "Business", ExperienceLevel: "Senior", Salary: 50000, TechnicalSkills: []string{"SQL", "Tableau"}},
		{ID: 3, Cluster: "Technology", ExperienceLevel: "Entry-level", Salary: 60001, TechnicalSkills: []string{"Python", "SQL", "Git"}},
		{ID: 4, Cluster: "Healthcare", ExperienceLevel: "Director", Salary: 200000, TechnicalSkills: nil},
	}
}

func TestSummarize(t *testing.T) {
	ov := Summarize(statsFixture())
	assert.Equal(t, 4, ov.Total)
	assert.Equal(t, 102500, ov.AverageSalary)
	assert.Equal(t, "Technology", ov.TopCluster)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Overview{}, Summarize(nil))
}

func TestCountByCluster_OrderedByCountThenName(t *testing.T) {
	counts := CountByCluster(statsFixture())
	require.Equal(t, []Count{
		{Label: "Technology", Count: 2},
		{Label: "Business", Count: 1},
		{Label: "Healthcare", Count: 1},
	}, counts)
}

func TestCountByExperience(t *testing.T) {
	counts := CountByExperience(statsFixture())
	require.Len(t, counts, 3)
	assert.Equal(t, Count{Label: "Senior", Count: 2}, counts[0])
}

func TestTopSkills(t *testing.T) {
	top := TopSkills(statsFixture(), 2)
	assert.Equal(t, []Count{
		{Label: "SQL", Count: 3},
		{Label: "Python", Count: 2},
	}, top)

	all := TopSkills(statsFixture(), 0)
	assert.Len(t, all, 4)
}

func TestFormatSalary(t *testing.T) {
	tests := map[int]string{
		0:       "$0",
		999:     "$999",
		1000:    "$1,000",
		45000:   "$45,000",
		1234567: "$1,234,567",
		-123:    "-$123",
		-45000:  "-$45,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatSalary(in))
	}
}
