package taxonomy

import (
	"fmt"
	"strings"
)

// validateTables performs all structural checks on the given tables.
// Returns a combined error describing all problems found, or nil if valid.
func validateTables(tb *tables) error {
	var errs []string

	checkUnique := func(kind string, names []string) {
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if n == "" {
				errs = append(errs, fmt.Sprintf("empty %s name", kind))
				continue
			}
			if seen[n] {
				errs = append(errs, fmt.Sprintf("duplicate %s: %q", kind, n))
			}
			seen[n] = true
		}
	}

	regionNames := make([]string, 0, len(tb.regions))
	for _, r := range tb.regions {
		regionNames = append(regionNames, r.Name)
		if len(r.Cities) == 0 {
			errs = append(errs, fmt.Sprintf("region %q has no cities", r.Name))
		}
		checkUnique("city in "+r.Name, r.Cities)
	}
	checkUnique("region", regionNames)

	clusterNames := make([]string, 0, len(tb.clusters))
	for _, c := range tb.clusters {
		clusterNames = append(clusterNames, c.Name)
		if len(c.Titles) == 0 {
			errs = append(errs, fmt.Sprintf("cluster %q has no titles", c.Name))
		}
		checkUnique("skill in "+c.Name, c.Skills)
	}
	checkUnique("cluster", clusterNames)

	levels := make([]string, 0, len(tb.experience))
	for _, b := range tb.experience {
		levels = append(levels, b.Level)
		if b.Salary.Min > b.Salary.Max {
			errs = append(errs, fmt.Sprintf("level %q has min salary %d above max %d",
				b.Level, b.Salary.Min, b.Salary.Max))
		}
	}
	checkUnique("experience level", levels)

	// Sampling without replacement needs enough entries for the largest draw.
	if len(tb.softSkills) < 4 {
		errs = append(errs, fmt.Sprintf("need at least 4 soft skills, have %d", len(tb.softSkills)))
	}
	if len(tb.traits) < 3 {
		errs = append(errs, fmt.Sprintf("need at least 3 personality traits, have %d", len(tb.traits)))
	}
	checkUnique("soft skill", tb.softSkills)
	checkUnique("personality trait", tb.traits)

	if len(errs) > 0 {
		return fmt.Errorf("taxonomy validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
