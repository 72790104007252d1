package index

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"pathways/internal/catalog"
)

// Minimum word lengths (in runes, exclusive) for the title and description indexes.
const (
	minTitleWord   = 2
	minKeywordWord = 3
)

// SearchIndex is the searchable-index.json document.
type SearchIndex struct {
	Program     string `json:"program"`
	LastUpdated string `json:"last_updated"`
	Index       Lookup `json:"search_index"`
}

// Lookup holds the course lists keyed by each search facet.
type Lookup struct {
	ByCode       map[string]CourseInfo             `json:"courses_by_code"`
	ByTitle      map[string][]CourseInfo           `json:"courses_by_title"`
	ByKeyword    map[string][]CourseInfo           `json:"courses_by_keywords"`
	ByPathway    map[string][]CourseInfo           `json:"courses_by_pathway"`
	ByYear       map[string][]CourseInfo           `json:"courses_by_year"`
	ByCourseType map[catalog.Category][]CourseInfo `json:"courses_by_course_type"`
}

// CourseInfo is a course together with where it sits in a pathway.
type CourseInfo struct {
	Code          string           `json:"code"`
	Title         string           `json:"title"`
	Credits       float64          `json:"credits"`
	Description   string           `json:"description"`
	Prerequisites *string          `json:"prerequisites"`
	Pathway       string           `json:"pathway"`
	Year          string           `json:"year"`
	Semester      catalog.Semester `json:"semester"`
	CourseType    catalog.Category `json:"course_type"`
}

// key identifies one placement of a course.
func (ci CourseInfo) key() string {
	return ci.Pathway + "|" + ci.Year + "|" + string(ci.Semester) + "|" + string(ci.CourseType) + "|" + ci.Code + "|" + ci.Title
}

// BuildSearchIndex indexes every course of every pathway. Courses without a
// code are searchable by words but absent from ByCode; courses missing a
// title or credits are left out.
func BuildSearchIndex(entries []catalog.Entry, meta Meta, updated time.Time) SearchIndex {
	idx := SearchIndex{
		Program:     meta.Program,
		LastUpdated: updated.Format(time.DateOnly),
		Index: Lookup{
			ByCode:       make(map[string]CourseInfo),
			ByTitle:      make(map[string][]CourseInfo),
			ByKeyword:    make(map[string][]CourseInfo),
			ByPathway:    make(map[string][]CourseInfo),
			ByYear:       make(map[string][]CourseInfo),
			ByCourseType: make(map[catalog.Category][]CourseInfo),
		},
	}
	lk := &idx.Index

	for _, e := range entries {
		lk.ByPathway[e.ID] = []CourseInfo{}
		e.Pathway.Walk(func(pl catalog.Placement, c catalog.Course) {
			if !usable(c) {
				return
			}
			info := CourseInfo{
				Code:          c.CodeOr(""),
				Title:         c.Title,
				Credits:       *c.Credits,
				Description:   c.DescriptionOr(""),
				Prerequisites: c.Prerequisites,
				Pathway:       e.ID,
				Year:          strconv.Itoa(pl.Year),
				Semester:      pl.Semester,
				CourseType:    pl.Category,
			}
			if info.Code != "" {
				lk.ByCode[info.Code] = info
			}
			for _, w := range Words(info.Title, minTitleWord) {
				lk.ByTitle[w] = append(lk.ByTitle[w], info)
			}
			for _, w := range Words(info.Description, minKeywordWord) {
				lk.ByKeyword[w] = append(lk.ByKeyword[w], info)
			}
			lk.ByPathway[e.ID] = append(lk.ByPathway[e.ID], info)
			lk.ByYear[info.Year] = append(lk.ByYear[info.Year], info)
			lk.ByCourseType[pl.Category] = append(lk.ByCourseType[pl.Category], info)
		})
	}
	return idx
}

// Words lower-cases s, splits it on whitespace, trims surrounding
// punctuation, and keeps words longer than minLen runes. Repeated words are
// returned once, in first-seen order.
func Words(s string, minLen int) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(s)) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(w) <= minLen {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Hit is a search result.
type Hit struct {
	CourseInfo
	Score int
}

// Score weights for Search.
const (
	codeWeight    = 10
	titleWeight   = 2
	keywordWeight = 1
)

// Search matches query words against course codes, title words, and
// description keywords. Results are ordered by score, then code, then
// pathway. limit <= 0 returns every hit.
func (s *SearchIndex) Search(query string, limit int) []Hit {
	if s == nil {
		return nil
	}
	hits := make(map[string]*Hit)
	add := func(ci CourseInfo, w int) {
		k := ci.key()
		h, ok := hits[k]
		if !ok {
			h = &Hit{CourseInfo: ci}
			hits[k] = h
		}
		h.Score += w
	}

	for _, f := range strings.Fields(query) {
		if ci, ok := s.lookupCode(f); ok {
			add(ci, codeWeight)
		}
	}
	for _, w := range Words(query, 1) {
		for _, ci := range s.Index.ByTitle[w] {
			add(ci, titleWeight)
		}
		for _, ci := range s.Index.ByKeyword[w] {
			add(ci, keywordWeight)
		}
	}

	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		if out[i].Pathway != out[j].Pathway {
			return out[i].Pathway < out[j].Pathway
		}
		return out[i].key() < out[j].key()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// lookupCode finds a course by code, ignoring case and an optional dash
// ("digf1003" matches "DIGF-1003").
func (s *SearchIndex) lookupCode(q string) (CourseInfo, bool) {
	if ci, ok := s.Index.ByCode[q]; ok {
		return ci, true
	}
	want := normalizeCode(q)
	for code, ci := range s.Index.ByCode {
		if normalizeCode(code) == want {
			return ci, true
		}
	}
	return CourseInfo{}, false
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, "-", ""))
}
