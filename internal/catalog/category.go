package catalog

import "strings"

// Category is one of the four fixed course classifications of a term.
type Category string

const (
	CoreCourses              Category = "core_courses"
	ProgramSpecificElectives Category = "program_specific_electives"
	OpenElectives            Category = "open_electives"
	BreadthElectives         Category = "breadth_electives"
)

// categoryOrder is the fixed column order of the course grid.
var categoryOrder = []Category{
	CoreCourses,
	ProgramSpecificElectives,
	OpenElectives,
	BreadthElectives,
}

// Categories returns the four categories in display order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Label returns the column header for the category.
func (c Category) Label() string {
	switch c {
	case CoreCourses:
		return "Core Courses"
	case ProgramSpecificElectives:
		return "Program Specific Electives"
	case OpenElectives:
		return "Open Electives"
	case BreadthElectives:
		return "Breadth Electives"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, k := range categoryOrder {
		if k == c {
			return true
		}
	}
	return false
}

// Semester identifies a term within a year.
type Semester string

const (
	Fall   Semester = "fall"
	Winter Semester = "winter"
)

// Semesters returns the terms of a year in row order.
func Semesters() []Semester {
	return []Semester{Fall, Winter}
}

// Label returns the capitalized semester name used in row labels.
func (s Semester) Label() string {
	switch s {
	case Fall:
		return "Fall"
	case Winter:
		return "Winter"
	default:
		return string(s)
	}
}

// ParseSemester maps a case-insensitive semester name to a Semester.
func ParseSemester(name string) (Semester, bool) {
	switch Semester(strings.ToLower(strings.TrimSpace(name))) {
	case Fall:
		return Fall, true
	case Winter:
		return Winter, true
	}
	return "", false
}
