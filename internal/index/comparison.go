// Package index builds the two auxiliary documents published next to the
// pathway fixtures: the cross-pathway comparison and the searchable course
// index. It also answers keyword queries against a loaded search index.
package index

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"pathways/internal/catalog"
)

// Meta describes the program the documents belong to.
type Meta struct {
	Program      string
	AcademicYear string
}

// DefaultMeta is used when the caller has no program metadata of its own.
var DefaultMeta = Meta{Program: "Digital Futures", AcademicYear: "2025/26"}

// Comparison is the pathway-comparison.json document.
type Comparison struct {
	Program      string           `json:"program"`
	AcademicYear string           `json:"academic_year"`
	Pathways     []string         `json:"pathways"`
	Comparison   ComparisonDetail `json:"comparison"`
}

// ComparisonDetail groups every course by placement and by category.
type ComparisonDetail struct {
	// ByYear maps year -> semester -> category -> course key -> pathway ids.
	ByYear map[string]map[catalog.Semester]map[catalog.Category]map[string][]string `json:"by_year"`
	// ByCourseType maps category -> course key -> offering.
	ByCourseType map[catalog.Category]map[string]*Offering `json:"by_course_type"`
	// AllCourses is the sorted set of course keys.
	AllCourses []string `json:"all_courses"`
}

// Offering records a course and the pathways that include it.
type Offering struct {
	Details   catalog.Course `json:"details"`
	OfferedIn []string       `json:"offered_in"`
}

// CourseKey identifies a course across pathways as "CODE: Title".
func CourseKey(c catalog.Course) string {
	return c.CodeOr("TBD") + ": " + c.Title
}

// usable reports whether c carries the fields the documents need.
func usable(c catalog.Course) bool {
	return strings.TrimSpace(c.Title) != "" && c.Credits != nil
}

// BuildComparison cross-references the courses of every pathway. Courses
// missing a title or credits are left out.
func BuildComparison(entries []catalog.Entry, meta Meta) Comparison {
	cmp := Comparison{
		Program:      meta.Program,
		AcademicYear: meta.AcademicYear,
		Pathways:     make([]string, 0, len(entries)),
		Comparison: ComparisonDetail{
			ByYear:       make(map[string]map[catalog.Semester]map[catalog.Category]map[string][]string),
			ByCourseType: make(map[catalog.Category]map[string]*Offering),
		},
	}
	all := make(map[string]struct{})

	for _, e := range entries {
		cmp.Pathways = append(cmp.Pathways, e.ID)
		e.Pathway.Walk(func(pl catalog.Placement, c catalog.Course) {
			if !usable(c) {
				return
			}
			key := CourseKey(c)
			all[key] = struct{}{}

			year := strconv.Itoa(pl.Year)
			byYear, ok := cmp.Comparison.ByYear[year]
			if !ok {
				byYear = newYearSlot()
				cmp.Comparison.ByYear[year] = byYear
			}
			slot := byYear[pl.Semester][pl.Category]
			if slot == nil {
				slot = make(map[string][]string)
				byYear[pl.Semester][pl.Category] = slot
			}
			slot[key] = append(slot[key], e.ID)

			byType, ok := cmp.Comparison.ByCourseType[pl.Category]
			if !ok {
				byType = make(map[string]*Offering)
				cmp.Comparison.ByCourseType[pl.Category] = byType
			}
			off, ok := byType[key]
			if !ok {
				off = &Offering{Details: c}
				byType[key] = off
			}
			if !slices.Contains(off.OfferedIn, e.ID) {
				off.OfferedIn = append(off.OfferedIn, e.ID)
			}
		})
	}

	cmp.Comparison.AllCourses = make([]string, 0, len(all))
	for k := range all {
		cmp.Comparison.AllCourses = append(cmp.Comparison.AllCourses, k)
	}
	sort.Strings(cmp.Comparison.AllCourses)
	return cmp
}

// newYearSlot pre-creates both semesters with all four categories.
func newYearSlot() map[catalog.Semester]map[catalog.Category]map[string][]string {
	out := make(map[catalog.Semester]map[catalog.Category]map[string][]string, 2)
	for _, s := range catalog.Semesters() {
		cats := make(map[catalog.Category]map[string][]string, 4)
		for _, c := range catalog.Categories() {
			cats[c] = make(map[string][]string)
		}
		out[s] = cats
	}
	return out
}

// OfferedIn returns the pathways that include the course under key, in any
// category, in document pathway order. A nil Comparison offers nothing.
func (c *Comparison) OfferedIn(key string) []string {
	if c == nil {
		return nil
	}
	in := make(map[string]bool)
	for _, byKey := range c.Comparison.ByCourseType {
		if off, ok := byKey[key]; ok {
			for _, id := range off.OfferedIn {
				in[id] = true
			}
		}
	}
	var out []string
	for _, id := range c.Pathways {
		if in[id] {
			out = append(out, id)
		}
	}
	return out
}

// SharedCourses returns the keys of courses offered by more than one pathway.
func (c *Comparison) SharedCourses() []string {
	seen := make(map[string]struct{})
	for _, byKey := range c.Comparison.ByCourseType {
		for key, off := range byKey {
			if len(off.OfferedIn) > 1 {
				seen[key] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
