// Package catalog holds the pathway fixture model and loads it from disk.
//
// A Pathway is a four-year academic plan: years 1..4, each with an optional
// fall and winter Term, each Term holding course lists keyed by Category.
// Records are read once and treated as immutable afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FirstYear and LastYear bound the years a pathway may describe.
const (
	FirstYear = 1
	LastYear  = 4
)

// Course is a single course record as stored in a pathway fixture.
// Pointer fields are nil when the fixture omits the value or sets it to null.
type Course struct {
	Title         string   `json:"title" yaml:"title"`
	Code          *string  `json:"code" yaml:"code"`
	Credits       *float64 `json:"credits" yaml:"credits"`
	Description   *string  `json:"description" yaml:"description"`
	Prerequisites *string  `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// CodeOr returns the course code, or fallback when absent or blank.
func (c Course) CodeOr(fallback string) string {
	if c.Code == nil || *c.Code == "" {
		return fallback
	}
	return *c.Code
}

// DescriptionOr returns the course description, or fallback when absent or blank.
func (c Course) DescriptionOr(fallback string) string {
	if c.Description == nil || *c.Description == "" {
		return fallback
	}
	return *c.Description
}

// Term maps each category to its ordered course list.
// A nil Term means the semester is absent; a missing category is an empty list.
type Term map[Category][]Course

// Courses returns the course list for cat (nil when absent).
func (t Term) Courses(cat Category) []Course {
	if t == nil {
		return nil
	}
	return t[cat]
}

// Year holds the optional fall and winter terms of one academic year.
type Year struct {
	Fall   Term `json:"fall,omitempty" yaml:"fall,omitempty"`
	Winter Term `json:"winter,omitempty" yaml:"winter,omitempty"`
}

// Term returns the term for the given semester (nil when absent).
func (y Year) Term(s Semester) Term {
	switch s {
	case Fall:
		return y.Fall
	case Winter:
		return y.Winter
	}
	return nil
}

// Empty reports whether the year has neither a fall nor a winter term.
func (y Year) Empty() bool {
	return y.Fall == nil && y.Winter == nil
}

// Pathway is a named four-year plan.
type Pathway struct {
	Name  string       `json:"name" yaml:"name"`
	Years map[int]Year `json:"years" yaml:"years"`
}

// UnmarshalJSON decodes a pathway fixture. Year keys that are not integers
// ("summer", "") are dropped along with their values.
func (p *Pathway) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string                     `json:"name"`
		Years map[string]json.RawMessage `json:"years"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Name = raw.Name
	p.Years = nil
	if raw.Years == nil {
		return nil
	}
	p.Years = make(map[int]Year, len(raw.Years))
	for key, body := range raw.Years {
		n, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		var y Year
		if err := json.Unmarshal(body, &y); err != nil {
			return fmt.Errorf("year %s: %w", key, err)
		}
		p.Years[n] = y
	}
	return nil
}

// Year returns the year record for n and whether it exists.
func (p Pathway) Year(n int) (Year, bool) {
	y, ok := p.Years[n]
	return y, ok
}

// YearNumbers returns the year keys present in the pathway, ascending.
// Keys outside FirstYear..LastYear are included so callers can report them.
func (p Pathway) YearNumbers() []int {
	out := make([]int, 0, len(p.Years))
	for n := range p.Years {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// CourseCount returns the number of course records across all terms.
func (p Pathway) CourseCount() int {
	n := 0
	for _, y := range p.Years {
		for _, s := range Semesters() {
			for _, courses := range y.Term(s) {
				n += len(courses)
			}
		}
	}
	return n
}

// Entry pairs a pathway with its identifier (the fixture file stem).
type Entry struct {
	ID      string
	Pathway Pathway
}

// Placement locates a course inside a pathway.
type Placement struct {
	Year     int
	Semester Semester
	Category Category
	Index    int
}

// Walk calls fn for every course of the pathway in grid order: years
// ascending, fall before winter, categories in display order, then input
// order. Categories outside the fixed four are visited last, sorted by name.
func (p Pathway) Walk(fn func(Placement, Course)) {
	for _, n := range p.YearNumbers() {
		y := p.Years[n]
		for _, s := range Semesters() {
			t := y.Term(s)
			if t == nil {
				continue
			}
			for _, cat := range termCategories(t) {
				for i, c := range t[cat] {
					fn(Placement{Year: n, Semester: s, Category: cat, Index: i}, c)
				}
			}
		}
	}
}

func termCategories(t Term) []Category {
	out := Categories()
	var extra []Category
	for cat := range t {
		if !cat.Valid() {
			extra = append(extra, cat)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
