package importer

import (
	"regexp"
	"strconv"
	"strings"

	"pathways/internal/catalog"
)

var (
	// courseHeader matches "DIGF-1003 Intro to Creative Computing (0.5 Credits)".
	// The dash and the word "Credits" are optional.
	courseHeader = regexp.MustCompile(`^([A-Z]{4}-?\d{4})\s+(.+?)\s*\(([\d.]+)\s*(?:Credits?)?\)`)
	// requisiteLine captures the first line of a "Requisite(s):" clause.
	requisiteLine = regexp.MustCompile(`(?s)Requisites?:\s*(.+?)(?:\n|$)`)
	// requisiteTail strips requisite clauses from the description.
	requisiteTail = regexp.MustCompile(`(?m)Requisites?:\s*.+$`)
)

// ParseCourse parses a spreadsheet cell into a course. ok is false when the
// cell is blank or does not start with a code/title/credits header.
func ParseCourse(text string) (c catalog.Course, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return catalog.Course{}, false
	}
	m := courseHeader.FindStringSubmatchIndex(text)
	if m == nil {
		return catalog.Course{}, false
	}
	code := text[m[2]:m[3]]
	title := strings.TrimSpace(text[m[4]:m[5]])
	credits, err := strconv.ParseFloat(text[m[6]:m[7]], 64)
	if err != nil {
		return catalog.Course{}, false
	}

	rest := strings.TrimSpace(text[m[1]:])
	var prereq *string
	if rm := requisiteLine.FindStringSubmatch(rest); rm != nil {
		p := strings.TrimSpace(rm[1])
		prereq = &p
	}
	desc := strings.TrimSpace(requisiteTail.ReplaceAllString(rest, ""))

	return catalog.Course{
		Title:         title,
		Code:          &code,
		Credits:       &credits,
		Description:   &desc,
		Prerequisites: prereq,
	}, true
}
