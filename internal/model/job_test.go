package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowFollowsColumns(t *testing.T) {
	j := JobRecord{
		Title:              "Backend Intern",
		Location:           "Delhi",
		ExperienceRequired: "0-1 years",
		Salary:             "₹ 3-5 LPA",
		JobURL:             "https://internshala.com/job/detail/1",
		DescriptionSummary: "Work on services used by thousands of people",
	}

	row := j.Row()
	assert.Len(t, row, len(Columns))
	assert.Equal(t, "Backend Intern", row[0])
	assert.Equal(t, "Delhi", row[1])
	assert.Equal(t, "0-1 years", row[2])
	assert.Equal(t, "", row[3])
	assert.Equal(t, "₹ 3-5 LPA", row[4])
	assert.Equal(t, "https://internshala.com/job/detail/1", row[5])
	assert.Equal(t, "Work on services used by thousands of people", row[6])
}

func TestEmpty(t *testing.T) {
	assert.True(t, JobRecord{}.Empty())
	assert.False(t, JobRecord{Salary: "₹ 10,000"}.Empty())
}

func TestRecordFromRow(t *testing.T) {
	j := JobRecord{Title: "Designer", Salary: "₹ 12,000", DescriptionSummary: "Design posters and banners for campaigns"}
	assert.Equal(t, j, RecordFromRow(j.Row()))
	assert.Equal(t, JobRecord{Title: "Only title"}, RecordFromRow([]string{"Only title"}))
}
