package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/keeper/internal/adapters/cli"
	"github.com/example/keeper/internal/core/species"
	"github.com/example/keeper/internal/ports/primary"
	"github.com/example/keeper/internal/wire"
)

func speciesMenuCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive wildlife conservation menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rt.sessionContext(cmd)
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			err := runMenu(ctx, p,
				speciesBanner(rt.session.SpeciesService()),
				"Thank you for using the Wildlife Conservation Tracking System!",
				speciesMenuItems(rt.session, out))
			if err != nil {
				return err
			}

			if history, _ := cmd.Flags().GetBool("history"); history {
				return rt.session.HistoryAdapter(out).List(ctx, "", 0)
			}
			return nil
		},
	}
	cmd.Flags().Bool("history", false, "Print the session's change history on exit")
	return cmd
}

func speciesBanner(service primary.SpeciesService) func(ctx context.Context, out io.Writer) error {
	return func(ctx context.Context, out io.Writer) error {
		entries, err := service.ListSpecies(ctx)
		if err != nil {
			return err
		}
		var statuses []string
		for _, e := range entries {
			if !slices.Contains(statuses, string(e.Status)) {
				statuses = append(statuses, string(e.Status))
			}
		}
		slices.Sort(statuses)

		fmt.Fprintln(out, "\n===== WILDLIFE CONSERVATION TRACKING SYSTEM =====")
		fmt.Fprintf(out, "Total Species: %d\n", len(entries))
		fmt.Fprintf(out, "Conservation Statuses: %s\n", strings.Join(statuses, ", "))
		return nil
	}
}

func speciesMenuItems(session *wire.Session, out io.Writer) []menuItem {
	adapter := session.SpeciesAdapter(out)
	history := session.HistoryAdapter(out)

	return []menuItem{
		{label: "View Species Data", run: func(ctx context.Context, p *prompter) error {
			return adapter.List(ctx)
		}},
		{label: "Filter Species", run: subMenu("Filter Options", speciesFilterItems(adapter))},
		{label: "Update Species Data", run: subMenu("Update Options", speciesUpdateItems(adapter))},
		{label: "Add New Species", run: func(ctx context.Context, p *prompter) error {
			fmt.Fprintln(p.out, "\nAdding new species to the database...")
			return adapter.Merge(ctx)
		}},
		{label: "View Conservation Statistics", run: func(ctx context.Context, p *prompter) error {
			return adapter.Stats(ctx)
		}},
		{label: "View Change History", run: func(ctx context.Context, p *prompter) error {
			return history.List(ctx, "species", 0)
		}},
	}
}

func speciesFilterItems(adapter *cliadapter.SpeciesAdapter) []menuItem {
	return []menuItem{
		{label: "Filter by Conservation Status", run: func(ctx context.Context, p *prompter) error {
			status, err := p.line("Enter conservation status to filter by: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.SpeciesFilters{Status: status})
		}},
		{label: "Filter by Population Range", run: func(ctx context.Context, p *prompter) error {
			lo, err := p.integer("Enter minimum population: ")
			if err != nil {
				return err
			}
			hi, err := p.integer("Enter maximum population: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.SpeciesFilters{MinPopulation: &lo, MaxPopulation: &hi})
		}},
		{label: "Filter by Habitat Type", run: func(ctx context.Context, p *prompter) error {
			habitat, err := p.line("Enter habitat type to filter by: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.SpeciesFilters{Habitat: habitat})
		}},
		{label: "Filter by Sanctuary", run: func(ctx context.Context, p *prompter) error {
			sanctuary, err := p.line("Enter sanctuary to filter by: ")
			if err != nil {
				return err
			}
			return adapter.Filter(ctx, primary.SpeciesFilters{Sanctuary: sanctuary})
		}},
		{label: "Search by Keyword", run: func(ctx context.Context, p *prompter) error {
			keyword, err := p.line("Enter keyword to search for: ")
			if err != nil {
				return err
			}
			return adapter.Search(ctx, keyword)
		}},
	}
}

func speciesUpdateItems(adapter *cliadapter.SpeciesAdapter) []menuItem {
	return []menuItem{
		{label: "Update Species Population", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter species ID to update: ")
			if err != nil {
				return err
			}
			population, err := p.integer("Enter new population: ")
			if err != nil {
				return err
			}
			return adapter.UpdatePopulation(ctx, id, population)
		}},
		{label: "Update Conservation Status", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter species ID to update: ")
			if err != nil {
				return err
			}
			names := make([]string, 0, len(species.Statuses()))
			for _, st := range species.Statuses() {
				names = append(names, string(st))
			}
			fmt.Fprintf(p.out, "Valid statuses: %s\n", strings.Join(names, ", "))
			status, err := p.line("Enter new conservation status: ")
			if err != nil {
				return err
			}
			return adapter.UpdateStatus(ctx, id, status)
		}},
		{label: "Add Species Threat", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter species ID to update: ")
			if err != nil {
				return err
			}
			threat, err := p.line("Enter new threat to add: ")
			if err != nil {
				return err
			}
			return adapter.AddThreat(ctx, id, threat)
		}},
		{label: "Add Species Sanctuary", run: func(ctx context.Context, p *prompter) error {
			id, err := p.line("Enter species ID to update: ")
			if err != nil {
				return err
			}
			sanctuary, err := p.line("Enter sanctuary to add: ")
			if err != nil {
				return err
			}
			return adapter.AddSanctuary(ctx, id, sanctuary)
		}},
	}
}
