// Package types provides type definitions for the resume data collected from the user.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NameKey is the PersonalInfo key that always holds the first line of the personal info block
const NameKey = "name"

// PersonalInfo maps lower-cased field names (name, location, phone, email, linkedin, github, ...)
// to their values
type PersonalInfo map[string]string

// Name returns the candidate name, or "" when none was entered
func (p PersonalInfo) Name() string {
	return p[NameKey]
}

// Lookup returns the value for key and whether the key is present
func (p PersonalInfo) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// SkillGroup is one skill category with its skills in entry order
type SkillGroup struct {
	Category string   `json:"category" yaml:"category"`
	Skills   []string `json:"skills" yaml:"skills"`
}

// SkillGroups keeps skill categories in the order they were first entered
type SkillGroups []SkillGroup

// Set stores skills under category. An existing category keeps its position and
// has its skills replaced.
func (g SkillGroups) Set(category string, skills []string) SkillGroups {
	for i := range g {
		if g[i].Category == category {
			g[i].Skills = skills
			return g
		}
	}
	return append(g, SkillGroup{Category: category, Skills: skills})
}

// Experience is a single position held at a company
type Experience struct {
	Position string   `json:"position" yaml:"position"`
	Company  string   `json:"company" yaml:"company"`
	Dates    string   `json:"dates" yaml:"dates"` // free-form, e.g. "01/2020 - 12/2021"
	Details  []string `json:"details" yaml:"details"`
}

// EducationEntry is a single degree
type EducationEntry struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year" yaml:"year"`
}

// Bundle is everything collected for one resume. Containers are never nil once
// built by the collector or normalized after loading from a file.
type Bundle struct {
	PersonalInfo    PersonalInfo     `json:"personal_info" yaml:"personal_info"`
	ProfilePicture  string           `json:"profile_picture,omitempty" yaml:"profile_picture,omitempty"`
	Skills          SkillGroups      `json:"skills" yaml:"skills"`
	Experiences     []Experience     `json:"experiences" yaml:"experiences"`
	Education       []EducationEntry `json:"education" yaml:"education"`
	Certifications  []string         `json:"certifications" yaml:"certifications"`
	Hobbies         []string         `json:"hobbies" yaml:"hobbies"`
	Languages       []string         `json:"languages" yaml:"languages"`
	PersonalDetails []string         `json:"personal_details" yaml:"personal_details"`
}

// NewBundle returns a Bundle with every container empty
func NewBundle() *Bundle {
	return &Bundle{
		PersonalInfo:    PersonalInfo{NameKey: ""},
		Skills:          SkillGroups{},
		Experiences:     []Experience{},
		Education:       []EducationEntry{},
		Certifications:  []string{},
		Hobbies:         []string{},
		Languages:       []string{},
		PersonalDetails: []string{},
	}
}

// HasProfilePicture reports whether a picture path was supplied
func (b *Bundle) HasProfilePicture() bool {
	return b.ProfilePicture != ""
}
