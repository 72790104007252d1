// Package importer converts pathway planning spreadsheets (CSV exports) into
// pathway fixtures.
//
// The expected sheet layout has the year marker ("YEAR 1") in column 1, the
// semester marker ("Semester 1 (Fall)") in column 2, and one course per
// category in columns 3 to 6: core, program-specific, open, breadth. Course
// rows follow their markers until the next marker.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"pathways/internal/catalog"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

var (
	yearMarker     = regexp.MustCompile(`^YEAR (\d)`)
	semesterMarker = regexp.MustCompile(`^Semester (\d) \((\w+)\)`)
)

// courseColumns maps sheet columns to categories.
var courseColumns = []struct {
	col int
	cat catalog.Category
}{
	{3, catalog.CoreCourses},
	{4, catalog.ProgramSpecificElectives},
	{5, catalog.OpenElectives},
	{6, catalog.BreadthElectives},
}

// minCourseRow is the column count a row needs before its course cells are read.
const minCourseRow = 7

const tracerName = "pathways/importer"

// PathwayName derives a display name from a pathway id:
// "games-playable-media-maker" becomes "Games Playable Media Maker".
func PathwayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// Stats summarizes one import.
type Stats struct {
	Rows    int // non-blank rows read
	Courses int // course cells parsed
	Skipped int // non-blank course cells that did not parse
}

// ParseCSV reads a Latin-1 encoded planning sheet and builds the pathway
// identified by id.
func ParseCSV(r io.Reader, id string) (catalog.Pathway, Stats, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	p := catalog.Pathway{Name: PathwayName(id), Years: make(map[int]catalog.Year)}
	var (
		st       Stats
		year     int
		semester catalog.Semester
	)

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return catalog.Pathway{}, st, fmt.Errorf("reading csv: %w", err)
		}
		if blankRow(row) {
			continue
		}
		st.Rows++
		line, _ := cr.FieldPos(0)

		if m := yearMarker.FindStringSubmatch(cell(row, 1)); m != nil {
			year, _ = strconv.Atoi(m[1])
			if _, ok := p.Years[year]; !ok {
				p.Years[year] = newYear()
			}
			if s, ok, err := semesterIn(row, line); err != nil {
				return catalog.Pathway{}, st, err
			} else if ok {
				semester = s
			}
			if semester != "" {
				addCourses(p, year, semester, row, &st)
			}
			continue
		}

		s, ok, err := semesterIn(row, line)
		if err != nil {
			return catalog.Pathway{}, st, err
		}
		if ok && year != 0 {
			semester = s
			addCourses(p, year, semester, row, &st)
			continue
		}

		if year != 0 && semester != "" {
			addCourses(p, year, semester, row, &st)
		}
	}
	return p, st, nil
}

// ImportFile opens path and runs ParseCSV on it.
func ImportFile(ctx context.Context, path, id string, log zerolog.Logger) (catalog.Pathway, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "importer.ParseCSV")
	defer span.End()
	span.SetAttributes(attribute.String("pathways.id", id), attribute.String("pathways.csv", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		return catalog.Pathway{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	p, st, err := ParseCSV(f, id)
	if err != nil {
		span.RecordError(err)
		return catalog.Pathway{}, fmt.Errorf("importing %s: %w", id, err)
	}
	log.Info().
		Str("pathway", id).
		Str("file", path).
		Int("rows", st.Rows).
		Int("courses", st.Courses).
		Int("skipped", st.Skipped).
		Msg("imported pathway")
	return p, nil
}

func newYear() catalog.Year {
	return catalog.Year{Fall: newTerm(), Winter: newTerm()}
}

func newTerm() catalog.Term {
	t := make(catalog.Term, len(courseColumns))
	for _, c := range courseColumns {
		t[c.cat] = []catalog.Course{}
	}
	return t
}

// semesterIn reads the semester marker in column 2, if any.
func semesterIn(row []string, line int) (catalog.Semester, bool, error) {
	m := semesterMarker.FindStringSubmatch(cell(row, 2))
	if m == nil {
		return "", false, nil
	}
	s, ok := catalog.ParseSemester(m[2])
	if !ok {
		return "", false, fmt.Errorf("line %d: unknown semester %q", line, m[2])
	}
	return s, true, nil
}

func addCourses(p catalog.Pathway, year int, s catalog.Semester, row []string, st *Stats) {
	if len(row) < minCourseRow {
		return
	}
	t := p.Years[year].Term(s)
	for _, c := range courseColumns {
		text := cell(row, c.col)
		if strings.TrimSpace(text) == "" {
			continue
		}
		course, ok := ParseCourse(text)
		if !ok {
			st.Skipped++
			continue
		}
		t[c.cat] = append(t[c.cat], course)
		st.Courses++
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
