package model

// JobRecord represents a single listing extracted from a jobs page.
// An empty field means the extractor found no value for it.
type JobRecord struct {
	Title              string `json:"title"`
	Location           string `json:"location"`
	ExperienceRequired string `json:"experience_required"`
	SkillsRequired     string `json:"skills_required"` // reserved for detail-page enrichment, always empty
	Salary             string `json:"salary"`          // free text, e.g. "₹ 25,000 /month"
	JobURL             string `json:"job_url"`
	DescriptionSummary string `json:"description_summary"`
}

// Columns is the fixed header of every exported sheet.
var Columns = []string{
	"JobTitle",
	"Location",
	"ExperienceRequired",
	"SkillsRequired",
	"Salary",
	"JobURL",
	"JobDescriptionSummary",
}

// Row returns the record's values in Columns order.
func (j JobRecord) Row() []string {
	return []string{
		j.Title,
		j.Location,
		j.ExperienceRequired,
		j.SkillsRequired,
		j.Salary,
		j.JobURL,
		j.DescriptionSummary,
	}
}

// Empty reports whether no field was populated.
func (j JobRecord) Empty() bool {
	for _, v := range j.Row() {
		if v != "" {
			return false
		}
	}
	return true
}

// RecordFromRow is the inverse of Row. Missing trailing values stay empty.
func RecordFromRow(values []string) JobRecord {
	at := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	return JobRecord{
		Title:              at(0),
		Location:           at(1),
		ExperienceRequired: at(2),
		SkillsRequired:     at(3),
		Salary:             at(4),
		JobURL:             at(5),
		DescriptionSummary: at(6),
	}
}
