package taxonomy

// Cluster is a career cluster: a top-level grouping of related job titles
// together with the technical skills those jobs draw from.
type Cluster struct {
	Name   string
	Titles []string
	Skills []string
}

// Region is a world region and the cities postings can be located in.
type Region struct {
	Name   string
	Cities []string
}

// SalaryRange is an inclusive salary bound for one experience level.
type SalaryRange struct {
	Min int
	Max int
}

// Contains reports whether salary lies within the inclusive range.
func (r SalaryRange) Contains(salary int) bool {
	return salary >= r.Min && salary <= r.Max
}

// ExperienceBand pairs an experience level with its salary range.
type ExperienceBand struct {
	Level  string
	Salary SalaryRange
}
