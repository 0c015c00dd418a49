package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nikolayk812/airport-services/internal/domain"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the services on offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(opts, false)
			if err != nil {
				return err
			}
			defer rt.close()

			services := rt.catalog.Filter(filter)
			if len(services) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No services match the filter")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), catalogTable(services))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list services whose name or description contains this text")

	return cmd
}

func catalogTable(services []domain.Service) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SERVICE", "PRICE", "DESCRIPTION")

	for _, s := range services {
		t.Row(s.ID, s.Name, s.Price.String(), s.Description)
	}

	return t.String()
}
