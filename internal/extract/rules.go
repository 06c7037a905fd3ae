package extract

import (
	"strings"

	"github.com/rsilvagit/jobsheet/internal/model"
)

// Field identifies a JobRecord field a Rule can populate.
type Field int

const (
	FieldLocation Field = iota
	FieldExperience
	FieldSalary
	FieldDescription
)

func (f Field) String() string {
	switch f {
	case FieldLocation:
		return "location"
	case FieldExperience:
		return "experience"
	case FieldSalary:
		return "salary"
	case FieldDescription:
		return "description"
	default:
		return "unknown"
	}
}

func (f Field) set(j *model.JobRecord, v string) {
	switch f {
	case FieldLocation:
		j.Location = v
	case FieldExperience:
		j.ExperienceRequired = v
	case FieldSalary:
		j.Salary = v
	case FieldDescription:
		j.DescriptionSummary = v
	}
}

// Rule classifies one text block into a field. Match receives the block text
// and its lower-cased form; Value derives the stored value from the text.
type Rule struct {
	Field Field
	Match func(text, lower string) bool
	Value func(text string) string
}

// DefaultRules returns the card classification policy in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Field: FieldLocation,
			Match: func(_, lower string) bool { return strings.Contains(lower, "location") },
			Value: ColonSplit,
		},
		{
			Field: FieldExperience,
			Match: func(_, lower string) bool { return ContainsAny(lower, "experience", "exp.") },
			Value: ColonSplit,
		},
		{
			Field: FieldSalary,
			Match: func(text, lower string) bool {
				return ContainsAny(lower, "salary", "stipend", "lpa") || strings.Contains(text, "₹")
			},
			Value: Verbatim,
		},
		{
			Field: FieldDescription,
			Match: func(text, lower string) bool {
				return len(strings.Fields(text)) > 5 && !strings.Contains(lower, "apply now")
			},
			Value: Verbatim,
		},
	}
}

// ColonSplit keeps the trimmed text after the first colon, or the whole text
// when there is none. "Location(s): Delhi, Mumbai" yields "Delhi, Mumbai".
func ColonSplit(text string) string {
	if _, after, ok := strings.Cut(text, ":"); ok {
		return strings.TrimSpace(after)
	}
	return text
}

// Verbatim keeps the text as is.
func Verbatim(text string) string {
	return text
}

// ContainsAny checks if text contains any of the given terms.
func ContainsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}
