package dataset_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"grip-attendance/core/dataset"
	"grip-attendance/core/mapping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMapping() mapping.FieldMapping {
	return mapping.FieldMapping{
		Email:        "Email",
		FirstName:    "First Name",
		LastName:     "Last Name",
		Attended:     "Attended",
		Duration:     "Attendance Duration",
		NotAvailable: "N/A",
	}
}

func TestLoadRegistrants(t *testing.T) {
	input := "Company,Email,First Name,Last Name\n" +
		"Acme,ann@x.com,Ann,Lee\n" +
		"Initech,Bob@X.com,Bob,Ray\n"

	regs, err := dataset.LoadRegistrants(strings.NewReader(input), fieldMapping())
	require.NoError(t, err)

	assert.Equal(t, []string{"Company", "Email", "First Name", "Last Name"}, regs.Columns)
	require.Equal(t, 2, regs.Len())

	for _, r := range regs.Rows {
		assert.False(t, r.Attended)
		assert.Equal(t, dataset.DefaultDuration, r.Duration)
		assert.False(t, r.Synthesized)
	}
	assert.Equal(t, "Bob@X.com", regs.Rows[1].Get("Email"))
	assert.Equal(t, "Initech", regs.Rows[1].Get("Company"))
	assert.Equal(t, "", regs.Rows[1].Get("Phone"))

	assert.Equal(t,
		[]string{"Company", "Email", "First Name", "Last Name", "Attended", "Attendance Duration"},
		regs.OutputColumns(fieldMapping()),
	)
}

func TestLoadRegistrants_HeaderOnly(t *testing.T) {
	regs, err := dataset.LoadRegistrants(strings.NewReader("Email,First Name,Last Name\n"), fieldMapping())
	require.NoError(t, err)
	assert.Equal(t, 0, regs.Len())
	assert.Equal(t, []string{"Email", "First Name", "Last Name"}, regs.Columns)
}

func TestLoadRegistrants_ByteOrderMark(t *testing.T) {
	input := "\xEF\xBB\xBF\"Email\",First Name,Last Name\nann@x.com,Ann,Lee\n"

	regs, err := dataset.LoadRegistrants(strings.NewReader(input), fieldMapping())
	require.NoError(t, err)
	assert.Equal(t, "Email", regs.Columns[0])
	assert.Equal(t, "ann@x.com", regs.Rows[0].Get("Email"))
}

func TestLoadRegistrants_PreviousReport(t *testing.T) {
	input := "Email,First Name,Last Name,Attended,Attendance Duration\n" +
		"ann@x.com,Ann,Lee,True,45 mins\n" +
		"bob@x.com,Bob,Ray,False,0.0 mins\n" +
		"cy@x.com,Cy,Fox,,\n"

	regs, err := dataset.LoadRegistrants(strings.NewReader(input), fieldMapping())
	require.NoError(t, err)
	require.Equal(t, 3, regs.Len())

	assert.True(t, regs.Rows[0].Attended)
	assert.Equal(t, "45 mins", regs.Rows[0].Duration)
	assert.False(t, regs.Rows[1].Attended)
	assert.Equal(t, "0.0 mins", regs.Rows[1].Duration)
	assert.False(t, regs.Rows[2].Attended)
	assert.Equal(t, "", regs.Rows[2].Duration)

	assert.Equal(t, regs.Columns, regs.OutputColumns(fieldMapping()), "columns are not appended twice")
}

func TestLoadRegistrants_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Empty", "", dataset.ErrMissingColumn},
		{"NoEmailColumn", "E-mail,First Name,Last Name\nann@x.com,Ann,Lee\n", dataset.ErrMissingColumn},
		{"NoLastNameColumn", "Email,First Name\nann@x.com,Ann\n", dataset.ErrMissingColumn},
		{"ShortRow", "Email,First Name,Last Name\nann@x.com,Ann\n", csv.ErrFieldCount},
		{"BadAttended", "Email,First Name,Last Name,Attended\nann@x.com,Ann,Lee,maybe\n", dataset.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.LoadRegistrants(strings.NewReader(tt.input), fieldMapping())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadAttendees(t *testing.T) {
	input := "Email,First Name,Last Name,Attendance Duration\n" +
		"A@x.com,Ann,Lee,10 mins\n" +
		"b@x.com,Bob,Ray,20 mins\n" +
		"a@x.com,Annie,Lee,30 mins\n"

	idx, err := dataset.LoadAttendees(strings.NewReader(input), fieldMapping(), dataset.IndexOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, idx.Keys())

	a, ok := idx.Get("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "Annie", a["First Name"], "last row wins")
	assert.Equal(t, "30 mins", a["Attendance Duration"])
	assert.Equal(t, "a@x.com", a["Email"], "original case is kept in the record")

	assert.False(t, idx.Has("A@x.com"))
}

func TestLoadAttendees_MissingColumn(t *testing.T) {
	input := "Email,First Name,Last Name\nann@x.com,Ann,Lee\n"

	_, err := dataset.LoadAttendees(strings.NewReader(input), fieldMapping(), dataset.IndexOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Attendance Duration")
}

func TestAttendeeIndex_BlankEmails(t *testing.T) {
	rows := []dataset.Attendee{
		{"Email": "", "First Name": "Walk", "Attendance Duration": "40 mins"},
		{"Email": "  ", "First Name": "Drop"},
		{"Email": "c@x.com", "First Name": "Cy"},
		{"Email": "", "First Name": " "},
	}

	t.Run("UnkeyedByDefault", func(t *testing.T) {
		idx := dataset.NewAttendeeIndex("Email", dataset.IndexOptions{})
		keyed := 0
		for _, r := range rows {
			if idx.Put(r) {
				keyed++
			}
		}
		assert.Equal(t, 1, keyed)
		assert.Equal(t, 1, idx.Len())
		assert.False(t, idx.Has(""))

		unkeyed := idx.Unkeyed()
		require.Len(t, unkeyed, 2)
		assert.Equal(t, "Walk", unkeyed[0]["First Name"])
		assert.Equal(t, "40 mins", unkeyed[0]["Attendance Duration"])
		assert.Equal(t, "Drop", unkeyed[1]["First Name"])
		assert.Equal(t, 1, idx.Skipped())
	})

	t.Run("KeyedWhenEnabled", func(t *testing.T) {
		idx := dataset.NewAttendeeIndex("Email", dataset.IndexOptions{MatchBlankEmails: true})
		for _, r := range rows {
			idx.Put(r)
		}
		assert.Equal(t, 3, idx.Len())
		assert.Empty(t, idx.Unkeyed())
		assert.Equal(t, 0, idx.Skipped())
		assert.True(t, idx.Has("  "))

		a, ok := idx.Get("")
		require.True(t, ok)
		assert.Equal(t, " ", a["First Name"], "last row wins")
	})
}

func TestAttendeeIndex_KeysIsACopy(t *testing.T) {
	idx := dataset.NewAttendeeIndex("Email", dataset.IndexOptions{})
	idx.Put(dataset.Attendee{"Email": "a@x.com"})

	keys := idx.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a@x.com"}, idx.Keys())
}

func TestNewSynthesized(t *testing.T) {
	r := dataset.NewSynthesized([]string{"Email", "Company"}, "N/A")

	assert.True(t, r.Attended)
	assert.True(t, r.Synthesized)
	assert.Equal(t, map[string]string{"Email": "N/A", "Company": "N/A"}, r.Values)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@x.com", dataset.NormalizeEmail("ANN@X.com"))
	assert.Equal(t, " ann@x.com ", dataset.NormalizeEmail(" Ann@x.com "))
}
