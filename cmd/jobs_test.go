package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/recommend"
	"github.com/abhisek/careerlab/internal/store"
)

func TestPrintMatchesEmpty(t *testing.T) {
	var buf bytes.Buffer
	printMatches(&buf, &recommend.Result{})
	assert.Contains(t, buf.String(), "No jobs match your criteria")
}

func TestPrintMatches(t *testing.T) {
	res := &recommend.Result{
		Total: 3,
		Matches: []recommend.Match{{
			Posting: jobs.Posting{ID: 7, Title: "Data Scientist", Company: "Company 7", City: "Berlin", Region: "Europe", Salary: 95000},
			Score:   17,
		}},
	}

	var buf bytes.Buffer
	printMatches(&buf, res)
	out := buf.String()
	assert.Contains(t, out, "Found 3 matching jobs")
	assert.Contains(t, out, "Data Scientist")
	assert.Contains(t, out, "85% Strong Match")
	assert.Contains(t, out, "$95,000")
}

func TestPrintCounts(t *testing.T) {
	var buf bytes.Buffer
	printCounts(&buf, "Skill", []jobs.Count{{Label: "Python", Count: 12}})
	assert.Contains(t, buf.String(), "Python")
	assert.Contains(t, buf.String(), "12")
}

func TestNewRNGDeterministic(t *testing.T) {
	a := newRNG(42, streamJobs)
	b := newRNG(42, streamJobs)
	assert.Equal(t, a.IntN(1000), b.IntN(1000))
}

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), store.DataFileName), nil)
	require.NoError(t, err)
	return st
}

func TestWriteDatasetKeepsExistingWithoutForce(t *testing.T) {
	st := testStore(t)
	gen := jobs.NewGenerator(newRNG(7, streamJobs))

	_, written, err := writeDataset(st, gen, 5, false)
	require.NoError(t, err)
	require.True(t, written)

	_, written, err = writeDataset(st, gen, 8, false)
	require.NoError(t, err)
	assert.False(t, written)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestWriteDatasetForceReplaces(t *testing.T) {
	st := testStore(t)
	gen := jobs.NewGenerator(newRNG(7, streamJobs))

	_, _, err := writeDataset(st, gen, 5, false)
	require.NoError(t, err)
	_, written, err := writeDataset(st, gen, 8, true)
	require.NoError(t, err)
	assert.True(t, written)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestWriteDatasetFailedSaveKeepsOldFile(t *testing.T) {
	st := testStore(t)
	gen := jobs.NewGenerator(newRNG(7, streamJobs))

	_, _, err := writeDataset(st, gen, 5, false)
	require.NoError(t, err)

	// A directory in place of the temp file makes the write fail.
	require.NoError(t, os.Mkdir(st.Path()+".tmp", 0o755))

	_, written, err := writeDataset(st, gen, 8, true)
	require.Error(t, err)
	assert.False(t, written)

	got, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func parseProfile(t *testing.T, args ...string) (recommend.Profile, recommend.Filter, error) {
	t.Helper()
	c := &cobra.Command{Use: "recommend"}
	addProfileFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return profileFromFlags(c)
}

func TestProfileFromFlags(t *testing.T) {
	profile, filter, err := parseProfile(t,
		"--skill", "Python, SQL", "--skill", "Git",
		"--trait", "Analytical", "--region", "Europe",
		"--level", "Mid-level", "--arrangement", "Remote",
		"--min-salary", "50000", "--limit", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "SQL", "Git"}, profile.Skills)
	assert.Equal(t, []string{"Analytical"}, profile.Personality)
	assert.Equal(t, []string{"Europe"}, profile.PreferredRegions)
	assert.Equal(t, "Mid-level", profile.ExperienceLevel)
	assert.Equal(t, recommend.Filter{WorkArrangements: []string{"Remote"}, MinSalary: 50000, Limit: 3}, filter)
}

func TestProfileFromFlagsRejectsUnknownValues(t *testing.T) {
	tests := map[string][]string{
		"unknown personality trait": {"--trait", "Curious"},
		"unknown region":            {"--region", "Atlantis"},
		"unknown work arrangement":  {"--arrangement", "Nomadic"},
		"unknown experience level":  {"--level", "Wizard"},
		"must not be negative":      {"--min-salary=-1"},
	}
	for want, args := range tests {
		_, _, err := parseProfile(t, append([]string{"--skill", "Python"}, args...)...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), want)
	}
}
