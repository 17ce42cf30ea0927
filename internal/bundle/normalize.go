package bundle

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Normalize applies all normalization steps to a bundle read from a file, leaving
// it in the shape the collector produces
func Normalize(b *types.Bundle) error {
	if err := NormalizePersonalInfo(b); err != nil {
		return err
	}
	NormalizeSkills(b)
	NormalizeDetails(b)
	FillEmpty(b)
	return nil
}

// NormalizePersonalInfo lower-cases and trims field names and makes sure the name
// key is present. Two fields that collide after lower-casing are an error.
func NormalizePersonalInfo(b *types.Bundle) error {
	info := make(types.PersonalInfo, len(b.PersonalInfo)+1)
	original := make(map[string]string, len(b.PersonalInfo))

	for key, value := range b.PersonalInfo {
		normalized := strings.ToLower(strings.TrimSpace(key))
		if prev, exists := original[normalized]; exists {
			return &NormalizationError{
				Message: fmt.Sprintf("personal_info fields '%s' and '%s' both map to '%s'", prev, key, normalized),
			}
		}
		original[normalized] = key
		info[normalized] = strings.TrimSpace(value)
	}

	if _, ok := info[types.NameKey]; !ok {
		info[types.NameKey] = ""
	}
	b.PersonalInfo = info
	return nil
}

// NormalizeSkills merges repeated categories the way re-entering one does at the
// prompt: the first position is kept and the last skills win
func NormalizeSkills(b *types.Bundle) {
	merged := make(types.SkillGroups, 0, len(b.Skills))
	for _, group := range b.Skills {
		skills := group.Skills
		if skills == nil {
			skills = []string{}
		}
		merged = merged.Set(group.Category, skills)
	}
	b.Skills = merged
}

// NormalizeDetails trims whitespace around experience detail lines
func NormalizeDetails(b *types.Bundle) {
	for i := range b.Experiences {
		details := make([]string, 0, len(b.Experiences[i].Details))
		for _, d := range b.Experiences[i].Details {
			details = append(details, strings.TrimSpace(d))
		}
		b.Experiences[i].Details = details
	}
}

// FillEmpty replaces nil containers with empty ones
func FillEmpty(b *types.Bundle) {
	if b.PersonalInfo == nil {
		b.PersonalInfo = types.PersonalInfo{types.NameKey: ""}
	}
	if b.Skills == nil {
		b.Skills = types.SkillGroups{}
	}
	if b.Experiences == nil {
		b.Experiences = []types.Experience{}
	}
	if b.Education == nil {
		b.Education = []types.EducationEntry{}
	}
	if b.Certifications == nil {
		b.Certifications = []string{}
	}
	if b.Hobbies == nil {
		b.Hobbies = []string{}
	}
	if b.Languages == nil {
		b.Languages = []string{}
	}
	if b.PersonalDetails == nil {
		b.PersonalDetails = []string{}
	}
}
