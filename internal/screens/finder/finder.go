package finder

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerlab/internal/jobs"
	"github.com/abhisek/careerlab/internal/recommend"
	"github.com/abhisek/careerlab/internal/screen"
	"github.com/abhisek/careerlab/internal/taxonomy"
	"github.com/abhisek/careerlab/internal/ui/components"
	"github.com/abhisek/careerlab/internal/ui/layout"
)

const (
	fieldSkills = iota
	fieldTraits
	fieldRegions
	fieldLevel
	fieldArrangements
	fieldMinSalary
	fieldCount
)

// FinderScreen collects a profile and shows ranked job matches.
type FinderScreen struct {
	postings []jobs.Posting
	logger   *zap.Logger
	inputs   []components.TextInput
	focus    int
	result   *recommend.Result
	warning  string
}

var _ screen.Screen = (*FinderScreen)(nil)
var _ screen.KeyHintProvider = (*FinderScreen)(nil)

// New creates a FinderScreen searching postings.
func New(postings []jobs.Posting, logger *zap.Logger) *FinderScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	inputs := make([]components.TextInput, fieldCount)
	inputs[fieldSkills] = components.NewTextInput("Skills", "Python, SQL, Data Analysis", false, 200)
	inputs[fieldTraits] = components.NewTextInput("Personality", "Analytical, Detail-oriented", false, 200)
	inputs[fieldRegions] = components.NewTextInput("Regions", "Europe, Asia", false, 120)
	inputs[fieldLevel] = components.NewTextInput("Experience", strings.Join(taxonomy.ExperienceLevels()[:3], " / ")+" ...", false, 40)
	inputs[fieldArrangements] = components.NewTextInput("Arrangement", "Remote, Hybrid", false, 80)
	inputs[fieldMinSalary] = components.NewTextInput("Min salary", "0", true, 7)

	return &FinderScreen{postings: postings, logger: logger, inputs: inputs}
}

func (s *FinderScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *FinderScreen) Title() string {
	return "Find Jobs"
}

func (s *FinderScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Edit profile"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "Enter", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FinderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}

	if s.result != nil {
		if kmsg.String() == "enter" {
			s.result = nil
			return s, s.inputs[s.focus].Focus()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "enter":
		s.search()
		return s, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *FinderScreen) moveFocus(delta int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.inputs[s.focus].Focus()
}

// Profile builds the profile from the form.
func (s *FinderScreen) Profile() recommend.Profile {
	return recommend.Profile{
		Skills:           recommend.SplitList(s.inputs[fieldSkills].Value()),
		Personality:      recommend.SplitList(s.inputs[fieldTraits].Value()),
		PreferredRegions: recommend.SplitList(s.inputs[fieldRegions].Value()),
		ExperienceLevel:  s.inputs[fieldLevel].Value(),
	}
}

func (s *FinderScreen) search() {
	s.warning = ""
	profile := s.Profile()

	if lvl := profile.ExperienceLevel; lvl != "" && !taxonomy.IsExperienceLevel(lvl) {
		s.warning = fmt.Sprintf("Unknown experience level %q. Use one of: %s.", lvl, strings.Join(taxonomy.ExperienceLevels(), ", "))
		return
	}
	if bad := unknown(profile.Personality, taxonomy.IsPersonalityTrait); bad != "" {
		s.warning = fmt.Sprintf("Unknown personality trait %q. Use one of: %s.", bad, strings.Join(taxonomy.PersonalityTraits(), ", "))
		return
	}
	if bad := unknown(profile.PreferredRegions, taxonomy.IsRegion); bad != "" {
		s.warning = fmt.Sprintf("Unknown region %q. Use one of: %s.", bad, strings.Join(taxonomy.Regions(), ", "))
		return
	}
	arrangements := recommend.SplitList(s.inputs[fieldArrangements].Value())
	if bad := unknown(arrangements, taxonomy.IsWorkArrangement); bad != "" {
		s.warning = fmt.Sprintf("Unknown work arrangement %q. Use one of: %s.", bad, strings.Join(taxonomy.WorkArrangements(), ", "))
		return
	}
	minSalary, err := s.inputs[fieldMinSalary].NumericValue()
	if err != nil {
		s.warning = "Minimum salary must be a whole number."
		return
	}

	res, err := recommend.Search(s.postings, profile, recommend.Filter{
		WorkArrangements: arrangements,
		MinSalary:        minSalary,
	})
	if errors.Is(err, recommend.ErrNoSkills) {
		s.warning = "Please enter at least one skill to find matching jobs."
		return
	}
	if err != nil {
		s.warning = err.Error()
		return
	}

	s.logger.Debug("job search",
		zap.Strings("skills", profile.Skills),
		zap.Int("matches", res.Total),
	)
	s.inputs[s.focus].Blur()
	s.result = res
}

// unknown returns the first value rejected by known, or "".
func unknown(values []string, known func(string) bool) string {
	for _, v := range values {
		if !known(v) {
			return v
		}
	}
	return ""
}

func (s *FinderScreen) View(width, height int) string {
	if s.result != nil {
		return s.renderResults(width, height)
	}
	return s.renderForm(width, height)
}
