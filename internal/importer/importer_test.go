package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pathways/internal/catalog"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCourse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		ok      bool
		code    string
		title   string
		credits float64
		desc    string
		prereq  string
	}{
		{
			name:    "full cell",
			in:      "DIGF-1003 Intro to Creative Computing (0.5 Credits)\nProgramming basics.\nRequisite: None",
			ok:      true,
			code:    "DIGF-1003",
			title:   "Intro to Creative Computing",
			credits: 0.5,
			desc:    "Programming basics.",
			prereq:  "None",
		},
		{
			name:    "no dash, singular credit",
			in:      "DIGF2010 Game Studio (1 Credit)",
			ok:      true,
			code:    "DIGF2010",
			title:   "Game Studio",
			credits: 1,
		},
		{
			name:    "bare credits",
			in:      "  CRCP-3001 Physical Computing (0.5)  Sensors and circuits.",
			ok:      true,
			code:    "CRCP-3001",
			title:   "Physical Computing",
			credits: 0.5,
			desc:    "Sensors and circuits.",
		},
		{name: "placeholder", in: "Open Elective"},
		{name: "blank", in: "   "},
		{name: "lowercase code", in: "digf-1003 Intro (0.5 Credits)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseCourse(tt.in)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			require.NotNil(t, c.Code)
			require.NotNil(t, c.Credits)
			require.NotNil(t, c.Description)
			assert.Equal(t, tt.code, *c.Code)
			assert.Equal(t, tt.title, c.Title)
			assert.Equal(t, tt.credits, *c.Credits)
			assert.Equal(t, tt.desc, *c.Description)
			if tt.prereq == "" {
				assert.Nil(t, c.Prerequisites)
			} else {
				require.NotNil(t, c.Prerequisites)
				assert.Equal(t, tt.prereq, *c.Prerequisites)
			}
		})
	}
}

// sheet is a Latin-1 planning sheet: 0xE9 is "é".
var sheet = strings.Join([]string{
	",,,DIGF-1000 Before Any Marker (0.5 Credits),,,",
	",YEAR 1,Semester 1 (Fall),DIGF-1003 Intro to Computing (0.5 Credits) Caf\xe9 culture,,Open Elective,,",
	",,,DIGF-1004 Drawing (0.5 Credits),,,,",
	",,Semester 2 (Winter),DIGF-1010 Studio (1.0 Credits),,,,",
	",YEAR 2,Semester 3 (Fall),,DIGF-2001 Systems (0.5 Credit),,,",
	",,,,,,",
	"Notes,,,,",
}, "\n")

func TestParseCSV(t *testing.T) {
	p, st, err := ParseCSV(strings.NewReader(sheet), "creative-technologist")
	require.NoError(t, err)

	assert.Equal(t, "Creative Technologist", p.Name)
	assert.Equal(t, []int{1, 2}, p.YearNumbers())
	assert.Equal(t, Stats{Rows: 6, Courses: 4, Skipped: 1}, st)

	fall := p.Years[1].Fall
	require.Len(t, fall[catalog.CoreCourses], 2)
	intro := fall[catalog.CoreCourses][0]
	assert.Equal(t, "DIGF-1003", *intro.Code)
	assert.Equal(t, "Café culture", *intro.Description)
	assert.Equal(t, "Drawing", fall[catalog.CoreCourses][1].Title)

	for _, cat := range catalog.Categories() {
		assert.NotNil(t, fall[cat], "category %s present", cat)
		assert.NotNil(t, p.Years[2].Winter[cat], "category %s present", cat)
	}
	assert.Empty(t, fall[catalog.OpenElectives], "placeholder cell skipped")

	winter := p.Years[1].Winter[catalog.CoreCourses]
	require.Len(t, winter, 1)
	assert.Equal(t, 1.0, *winter[0].Credits)

	y2 := p.Years[2].Fall[catalog.ProgramSpecificElectives]
	require.Len(t, y2, 1)
	assert.Equal(t, "Systems", y2[0].Title)
}

func TestParseCSV_UnknownSemester(t *testing.T) {
	_, _, err := ParseCSV(strings.NewReader(",YEAR 1,Semester 1 (Spring),,,,\n"), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown semester "Spring"`)
	assert.Contains(t, err.Error(), "line 1")
}

func TestParseCSV_Empty(t *testing.T) {
	p, st, err := ParseCSV(strings.NewReader(""), "games-playable-media-maker")
	require.NoError(t, err)
	assert.Equal(t, "Games Playable Media Maker", p.Name)
	assert.Empty(t, p.Years)
	assert.Zero(t, st)
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))

	p, err := ImportFile(context.Background(), path, "creative-technologist", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 4, p.CourseCount())

	_, err = ImportFile(context.Background(), filepath.Join(dir, "missing.csv"), "x", zerolog.Nop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
