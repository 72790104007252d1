package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pathways/internal/catalog"
	"pathways/internal/ui"
)

func newBrowseCmd(a *app) *cobra.Command {
	var initial string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Start the interactive pathway browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := ui.NewAppModel(ui.AppOptions{
				Loader: func(ctx context.Context) (*catalog.Catalog, error) {
					return a.loadCatalog(ctx)
				},
				Log:            a.log,
				InitialPathway: initial,
			})
			p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			a.log.Info().Str("pathway", initial).Msg("starting browser")
			_, err := p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&initial, "pathway", "p", "", "pathway id to open on start")
	return cmd
}
