package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/recommend"
	"github.com/abhisek/careerlab/internal/store"
	"github.com/abhisek/careerlab/internal/taxonomy"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Generate, search and summarize job postings",
}

var jobsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the job postings dataset",
	RunE:  runJobsGenerate,
}

var jobsRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank job postings against your profile",
	RunE:  runJobsRecommend,
}

var jobsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show job market statistics",
	RunE:  runJobsStats,
}

func init() {
	jobsGenerateCmd.Flags().Int("count", 0, "Number of postings (default from config)")
	jobsGenerateCmd.Flags().Bool("force", false, "Replace an existing dataset")

	addProfileFlags(jobsRecommendCmd)

	jobsStatsCmd.Flags().Int("top", jobs.DefaultTopSkills, "Number of skills in the demand table")

	jobsCmd.AddCommand(jobsGenerateCmd)
	jobsCmd.AddCommand(jobsRecommendCmd)
	jobsCmd.AddCommand(jobsStatsCmd)
}

func runJobsGenerate(cmd *cobra.Command, args []string) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	count := cfg.JobCount
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		count = n
	}
	force, _ := cmd.Flags().GetBool("force")

	st, err := openStore(logger)
	if err != nil {
		return err
	}
	postings, written, err := writeDataset(st, jobs.NewGenerator(newRNG(cfg.Seed, streamJobs)), count, force)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintf(cmd.OutOrStdout(), "Dataset already exists at %s (use --force to replace it).\n", st.Path())
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d job postings to %s\n", len(postings), st.Path())
	return nil
}

// writeDataset generates count postings and saves them. An existing dataset
// is left alone unless force is set, and is only replaced once the new one
// has been written.
func writeDataset(st *store.Store, gen store.Generator, count int, force bool) ([]jobs.Posting, bool, error) {
	exists, err := st.Exists()
	if err != nil {
		return nil, false, err
	}
	if exists && !force {
		return nil, false, nil
	}

	postings := gen.Generate(count)
	if err := st.Save(postings); err != nil {
		return nil, false, err
	}
	return postings, true, nil
}

func runJobsRecommend(cmd *cobra.Command, args []string) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	profile, filter, err := profileFromFlags(cmd)
	if err != nil {
		return err
	}
	postings, err := loadPostings(logger, cfg.Seed)
	if err != nil {
		return err
	}

	res, err := recommend.Search(postings, profile, filter)
	if errors.Is(err, recommend.ErrNoSkills) {
		return fmt.Errorf("%w (pass --skill)", err)
	}
	if err != nil {
		return err
	}
	logger.Debug("search done", zap.Int("total", res.Total), zap.Strings("skills", profile.Skills))

	printMatches(cmd.OutOrStdout(), res)
	return nil
}

func addProfileFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringArray("skill", nil, "Technical skill you have (repeatable or comma separated)")
	f.StringArray("trait", nil, "Personality trait (repeatable or comma separated)")
	f.StringArray("region", nil, "Preferred region (repeatable or comma separated)")
	f.String("level", "", "Experience level, e.g. Mid-level")
	f.StringArray("arrangement", nil, "Keep only these work arrangements")
	f.Int("min-salary", 0, "Keep only postings paying at least this much")
	f.Int("limit", recommend.DefaultLimit, "Maximum number of matches to show")
}

func profileFromFlags(cmd *cobra.Command) (recommend.Profile, recommend.Filter, error) {
	f := cmd.Flags()
	list := func(name string) []string {
		vals, _ := f.GetStringArray(name)
		return recommend.SplitList(strings.Join(vals, ","))
	}
	level, _ := f.GetString("level")
	minSalary, _ := f.GetInt("min-salary")
	limit, _ := f.GetInt("limit")

	level = strings.TrimSpace(level)
	if level != "" && !taxonomy.IsExperienceLevel(level) {
		return recommend.Profile{}, recommend.Filter{}, fmt.Errorf(
			"unknown experience level %q (one of: %s)", level, strings.Join(taxonomy.ExperienceLevels(), ", "))
	}
	traits, regions, arrangements := list("trait"), list("region"), list("arrangement")
	checks := []struct {
		what   string
		values []string
		known  func(string) bool
		all    []string
	}{
		{"personality trait", traits, taxonomy.IsPersonalityTrait, taxonomy.PersonalityTraits()},
		{"region", regions, taxonomy.IsRegion, taxonomy.Regions()},
		{"work arrangement", arrangements, taxonomy.IsWorkArrangement, taxonomy.WorkArrangements()},
	}
	for _, c := range checks {
		for _, v := range c.values {
			if !c.known(v) {
				return recommend.Profile{}, recommend.Filter{}, fmt.Errorf(
					"unknown %s %q (one of: %s)", c.what, v, strings.Join(c.all, ", "))
			}
		}
	}
	if minSalary < 0 {
		return recommend.Profile{}, recommend.Filter{}, fmt.Errorf("--min-salary must not be negative, got %d", minSalary)
	}

	profile := recommend.Profile{
		Skills:           list("skill"),
		Personality:      traits,
		PreferredRegions: regions,
		ExperienceLevel:  level,
	}
	filter := recommend.Filter{
		WorkArrangements: arrangements,
		MinSalary:        minSalary,
		Limit:            limit,
	}
	return profile, filter, nil
}

func printMatches(w io.Writer, res *recommend.Result) {
	if res.Empty() {
		fmt.Fprintln(w, "No jobs match your criteria. Try adjusting your skills or filters.")
		return
	}

	fmt.Fprintf(w, "Found %d matching jobs\n", res.Total)
	t := newTable("#", "Match", "Title", "Company", "Location", "Level", "Salary", "Arrangement")
	for i, m := range res.Matches {
		p := m.Posting
		t.Row(
			strconv.Itoa(i+1),
			fmt.Sprintf("%d%% %s", m.Percentage(), m.Strength()),
			p.Title,
			p.Company,
			p.City+", "+p.Region,
			p.ExperienceLevel,
			jobs.FormatSalary(p.Salary),
			p.WorkArrangement,
		)
	}
	fmt.Fprintln(w, t.Render())
}

func runJobsStats(cmd *cobra.Command, args []string) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	postings, err := loadPostings(logger, cfg.Seed)
	if err != nil {
		return err
	}
	top, _ := cmd.Flags().GetInt("top")

	out := cmd.OutOrStdout()
	ov := jobs.Summarize(postings)
	fmt.Fprintf(out, "Total jobs: %d  Average salary: %s  Top cluster: %s\n\n",
		ov.Total, jobs.FormatSalary(ov.AverageSalary), ov.TopCluster)

	printCounts(out, "Career Cluster", jobs.CountByCluster(postings))
	printCounts(out, "Experience Level", jobs.CountByExperience(postings))
	printCounts(out, "Skill", jobs.TopSkills(postings, top))
	return nil
}

func printCounts(w io.Writer, label string, counts []jobs.Count) {
	t := newTable(label, "Jobs")
	for _, c := range counts {
		t.Row(c.Label, strconv.Itoa(c.Count))
	}
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}
