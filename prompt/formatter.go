package prompt

import (
	"fmt"
	"strings"
)

// AnalysisType selects the focus of the rendered prompt.
type AnalysisType string

const (
	// AnalysisBasic covers the profile itself.
	AnalysisBasic AnalysisType = "basic"
	// AnalysisCareer adds career trajectory and growth advice.
	AnalysisCareer AnalysisType = "career"
	// AnalysisSkills adds a skills breakdown and gap analysis.
	AnalysisSkills AnalysisType = "skills"
	// AnalysisComprehensive combines career, skills, and market fit.
	AnalysisComprehensive AnalysisType = "comprehensive"
)

// AnalysisTypes lists the valid analysis types.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{AnalysisBasic, AnalysisCareer, AnalysisSkills, AnalysisComprehensive}
}

// formatterVersion identifies the prompt layout produced by Formatter.
const formatterVersion = "1.0.0"

// Formatter renders person-analysis prompts. The zero value is usable;
// NewFormatter applies the documented defaults.
type Formatter struct {
	// IncludeSkillsAnalysis adds a skills section when the profile lists
	// skills. Defaults to true.
	IncludeSkillsAnalysis bool
	// IncludeCareerAdvice adds an explicit career-planning requirement.
	IncludeCareerAdvice bool
}

// NewFormatter returns a Formatter with default options.
func NewFormatter() *Formatter {
	return &Formatter{IncludeSkillsAnalysis: true}
}

// Format renders the prompt for the given profile and analysis type. The
// profile is validated first; an unknown analysis type is an error.
func (f *Formatter) Format(person PersonInfo, analysisType AnalysisType) (string, error) {
	if err := person.Validate(); err != nil {
		return "", err
	}
	if !validAnalysisType(analysisType) {
		return "", fmt.Errorf("prompt: unknown analysis type %q", analysisType)
	}

	var b strings.Builder
	b.WriteString("# Person Analysis Task\n\n")

	b.WriteString("## Profile\n")
	b.WriteString(f.profileSection(person))
	b.WriteString("\n\n")

	b.WriteString("## Analysis Requirements\n")
	b.WriteString(f.requirementsSection(person, analysisType))
	b.WriteString("\n\n")

	b.WriteString("## Output Format\n")
	b.WriteString(f.outputSection())
	b.WriteString("\n\n")

	b.WriteString("Base the analysis strictly on the profile above and keep it accurate, useful, and in the requested format.\n")
	return b.String(), nil
}

// Metadata describes the formatter configuration, useful for logging which
// prompt layout produced a given request.
func (f *Formatter) Metadata() map[string]any {
	return map[string]any{
		"version": formatterVersion,
		"type":    "person_analysis",
		"features": map[string]bool{
			"skills_analysis": f.IncludeSkillsAnalysis,
			"career_advice":   f.IncludeCareerAdvice,
		},
	}
}

func (f *Formatter) profileSection(person PersonInfo) string {
	lines := []string{
		fmt.Sprintf("- Name: %s", person.Name),
		fmt.Sprintf("- Age: %d", person.Age),
		fmt.Sprintf("- Occupation: %s", person.Occupation),
		fmt.Sprintf("- Experience: %d years", person.ExperienceYears),
	}
	if person.Location != "" {
		lines = append(lines, fmt.Sprintf("- Location: %s", person.Location))
	}
	if len(person.Skills) > 0 {
		lines = append(lines, fmt.Sprintf("- Skills: %s", strings.Join(person.Skills, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) requirementsSection(person PersonInfo, analysisType AnalysisType) string {
	reqs := []string{
		"Objectively assess the person's overall background.",
		"Evaluate their professional background and level of experience.",
	}

	switch analysisType {
	case AnalysisCareer:
		reqs = append(reqs,
			"Analyze their career trajectory and potential.",
			"Give career development advice.",
		)
	case AnalysisSkills:
		reqs = append(reqs,
			"Break down their skill set and its strengths.",
			"Identify skill gaps and directions for improvement.",
		)
	case AnalysisComprehensive:
		reqs = append(reqs,
			"Assess their overall professional competitiveness.",
			"Give well-rounded development advice.",
			"Evaluate how well they match current market demand.",
		)
	}

	if f.IncludeSkillsAnalysis && len(person.Skills) > 0 {
		reqs = append(reqs, "Analyze the market value of their skill combination in detail.")
	}
	if f.IncludeCareerAdvice {
		reqs = append(reqs, "Provide concrete career planning recommendations.")
	}

	numbered := make([]string, len(reqs))
	for i, r := range reqs {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, r)
	}
	return strings.Join(numbered, "\n")
}

func (f *Formatter) outputSection() string {
	sections := []string{
		"Structure the result as follows:",
		"",
		"### Assessment",
		"- [summary of the basics]",
		"",
		"### Strengths",
		"- [main strengths]",
		"",
		"### Recommendations",
		"- [concrete advice]",
	}
	if f.IncludeSkillsAnalysis {
		sections = append(sections,
			"",
			"### Skills",
			"- [skill evaluation and advice]",
		)
	}
	return strings.Join(sections, "\n")
}

func validAnalysisType(t AnalysisType) bool {
	for _, v := range AnalysisTypes() {
		if t == v {
			return true
		}
	}
	return false
}
