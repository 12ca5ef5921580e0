package jobs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Posting is a single synthetic job posting. Postings are immutable once
// generated; the whole table is generated once and cached on disk.
type Posting struct {
	ID              int
	Title           string
	Cluster         string
	Company         string
	Region          string
	City            string
	Salary          int
	ExperienceLevel string
	Education       string

	// TechnicalSkills, SoftSkills and PreferredTraits are sets stored in
	// generation order. A missing value in the cache decodes as nil.
	TechnicalSkills []string
	SoftSkills      []string
	PreferredTraits []string

	WorkArrangement string
	CompanySize     string
	IndustryGrowth  string

	// PostedAt is a calendar date (midnight, local time).
	PostedAt time.Time

	Applications int
	Views        int
	SaveRate     float64
	Description  string
}

// HasSkill reports whether skill is one of the posting's technical skills.
func (p Posting) HasSkill(skill string) bool {
	for _, s := range p.TechnicalSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// HasTrait reports whether trait is one of the posting's preferred traits.
func (p Posting) HasTrait(trait string) bool {
	for _, s := range p.PreferredTraits {
		if s == trait {
			return true
		}
	}
	return false
}

// CompanyName returns the placeholder company name for a posting id.
func CompanyName(id int) string {
	return fmt.Sprintf("Company %d", id)
}

// Describe builds the templated job description.
func Describe(level, title string, technical, soft, traits []string) string {
	return fmt.Sprintf(
		"This is a %s %s position requiring expertise in %s. The ideal candidate should have strong %s skills and be %s.",
		level, title,
		strings.Join(technical, ", "),
		strings.Join(soft, ", "),
		strings.Join(traits, ", "),
	)
}

// FormatSalary renders a salary as "$123,456", or "-$123,456" when negative.
func FormatSalary(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	s := strconv.Itoa(n)
	b.WriteByte('$')
	pre := len(s) % 3
	if pre == 0 {
		pre = 3
	}
	b.WriteString(s[:pre])
	for i := pre; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
