package taxonomy

import (
	"slices"
	"sort"
)

// tables holds the static taxonomies with precomputed indices.
type tables struct {
	regions          []Region
	clusters         []Cluster
	softSkills       []string
	traits           []string
	experience       []ExperienceBand
	education        []string
	workArrangements []string
	companySizes     []string
	industryGrowth   []string

	regionByName  map[string]*Region
	clusterByName map[string]*Cluster
	salaryByLevel map[string]SalaryRange
	allSkills     []string
}

// t is the package-level table set, set by init() in seed.go.
var t *tables

// buildTables copies the seed tables and builds the lookup indices.
func buildTables(src tables) *tables {
	tb := &tables{
		regions:          slices.Clone(src.regions),
		clusters:         slices.Clone(src.clusters),
		softSkills:       slices.Clone(src.softSkills),
		traits:           slices.Clone(src.traits),
		experience:       slices.Clone(src.experience),
		education:        slices.Clone(src.education),
		workArrangements: slices.Clone(src.workArrangements),
		companySizes:     slices.Clone(src.companySizes),
		industryGrowth:   slices.Clone(src.industryGrowth),
		regionByName:     make(map[string]*Region, len(src.regions)),
		clusterByName:    make(map[string]*Cluster, len(src.clusters)),
		salaryByLevel:    make(map[string]SalaryRange, len(src.experience)),
	}

	for i := range tb.regions {
		tb.regionByName[tb.regions[i].Name] = &tb.regions[i]
	}

	seen := make(map[string]bool)
	for i := range tb.clusters {
		c := &tb.clusters[i]
		tb.clusterByName[c.Name] = c
		for _, s := range c.Skills {
			if !seen[s] {
				seen[s] = true
				tb.allSkills = append(tb.allSkills, s)
			}
		}
	}
	sort.Strings(tb.allSkills)

	for _, band := range tb.experience {
		tb.salaryByLevel[band.Level] = band.Salary
	}

	return tb
}

// Regions returns region names in display order.
func Regions() []string {
	names := make([]string, len(t.regions))
	for i, r := range t.regions {
		names[i] = r.Name
	}
	return names
}

// Cities returns the cities of a region, or nil for an unknown region.
func Cities(region string) []string {
	r, ok := t.regionByName[region]
	if !ok {
		return nil
	}
	return slices.Clone(r.Cities)
}

// Clusters returns career cluster names in display order.
func Clusters() []string {
	names := make([]string, len(t.clusters))
	for i, c := range t.clusters {
		names[i] = c.Name
	}
	return names
}

// Titles returns the job titles of a cluster, or nil for an unknown cluster.
func Titles(cluster string) []string {
	c, ok := t.clusterByName[cluster]
	if !ok {
		return nil
	}
	return slices.Clone(c.Titles)
}

// TechnicalSkills returns the skill list of a cluster. A cluster without a
// skill list (or an unknown cluster) yields nil.
func TechnicalSkills(cluster string) []string {
	c, ok := t.clusterByName[cluster]
	if !ok {
		return nil
	}
	return slices.Clone(c.Skills)
}

// AllTechnicalSkills returns the sorted, de-duplicated union of every
// cluster's skills.
func AllTechnicalSkills() []string {
	return slices.Clone(t.allSkills)
}

func SoftSkills() []string        { return slices.Clone(t.softSkills) }
func PersonalityTraits() []string { return slices.Clone(t.traits) }
func EducationLevels() []string   { return slices.Clone(t.education) }
func WorkArrangements() []string  { return slices.Clone(t.workArrangements) }
func CompanySizes() []string      { return slices.Clone(t.companySizes) }
func IndustryGrowth() []string    { return slices.Clone(t.industryGrowth) }

// ExperienceLevels returns the six experience levels, most junior first.
func ExperienceLevels() []string {
	levels := make([]string, len(t.experience))
	for i, b := range t.experience {
		levels[i] = b.Level
	}
	return levels
}

// SalaryRangeFor returns the salary bound tied to an experience level.
func SalaryRangeFor(level string) (SalaryRange, bool) {
	r, ok := t.salaryByLevel[level]
	return r, ok
}

// IsRegion reports whether name is a known region.
func IsRegion(name string) bool {
	_, ok := t.regionByName[name]
	return ok
}

// IsExperienceLevel reports whether level is one of the six levels.
func IsExperienceLevel(level string) bool {
	_, ok := t.salaryByLevel[level]
	return ok
}

// IsWorkArrangement reports whether name is a known work arrangement.
func IsWorkArrangement(name string) bool {
	return slices.Contains(t.workArrangements, name)
}

// IsTechnicalSkill reports whether name appears in any cluster's skill list.
func IsTechnicalSkill(name string) bool {
	_, found := slices.BinarySearch(t.allSkills, name)
	return found
}

// IsPersonalityTrait reports whether name is a known personality trait.
func IsPersonalityTrait(name string) bool {
	return slices.Contains(t.traits, name)
}

// Validate checks the loaded tables for structural issues.
func Validate() error {
	return validateTables(t)
}
