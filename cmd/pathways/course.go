package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pathways/internal/catalog"
	"pathways/internal/grid"
	"pathways/internal/index"
	"pathways/internal/ui"
)

const courseCardWidth = 64

func newCourseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "course <pathway-id> <code>",
		Short: "Print the detail card of a course",
		Long: `Print the detail card of the first course in the pathway with the
given code, followed by the other pathways offering it. Courses without a
code are listed as ` + grid.CodePlaceholder + `.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, code := args[0], strings.ToUpper(args[1])
			c, err := a.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			g, err := a.projectIn(c, grid.Selection{PathwayID: id})
			if err != nil {
				return err
			}
			e, _, ok := g.Find(code)
			if !ok {
				return fmt.Errorf("course %s not found in %s", code, id)
			}
			cmp, fromDisk, err := index.ComparisonFor(c.Dir(), c.Entries(), index.DefaultMeta)
			if err != nil {
				return err
			}
			a.log.Debug().Bool("comparison_on_disk", fromDisk).Msg("comparison ready")

			card := ui.RenderCourse(e, courseCardWidth)
			if also := ui.RenderAlsoIn(otherPathways(c, cmp, id, e), courseCardWidth); also != "" {
				card += "\n\n" + also
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), card)
			return err
		},
	}
}

// otherPathways names the pathways besides id that the comparison lists for e.
func otherPathways(c *catalog.Catalog, cmp *index.Comparison, id string, e grid.Entry) []string {
	var names []string
	for _, other := range cmp.OfferedIn(index.CourseKey(e.Course)) {
		if other == id {
			continue
		}
		name := other
		if p, err := c.Pathway(other); err == nil && p.Name != "" {
			name = p.Name
		}
		names = append(names, name)
	}
	return names
}
