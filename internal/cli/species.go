package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/keeper/internal/ports/primary"
)

// SpeciesCmd returns the species command
func SpeciesCmd(rt *runtime) *cobra.Command {
	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "Track endangered species",
		Long:  "List, filter, update and summarize the tracked species",
	}

	speciesCmd.AddCommand(speciesListCmd(rt))
	speciesCmd.AddCommand(speciesFilterCmd(rt))
	speciesCmd.AddCommand(speciesSearchCmd(rt))
	speciesCmd.AddCommand(speciesUpdateCmd(rt))
	speciesCmd.AddCommand(speciesMergeCmd(rt))
	speciesCmd.AddCommand(speciesStatsCmd(rt))
	speciesCmd.AddCommand(speciesMenuCmd(rt))
	return speciesCmd
}

func speciesListCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter := rt.session.SpeciesAdapter(cmd.OutOrStdout())
			if pending, _ := cmd.Flags().GetBool("pending"); pending {
				return adapter.Pending(rt.sessionContext(cmd))
			}
			return adapter.List(rt.sessionContext(cmd))
		},
	}
	cmd.Flags().Bool("pending", false, "List species waiting to be added instead")
	return cmd
}

func speciesFilterCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List species matching every given filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			habitat, _ := cmd.Flags().GetString("habitat")
			sanctuary, _ := cmd.Flags().GetString("sanctuary")
			minPopulation, err := intFlag(cmd, "min")
			if err != nil {
				return err
			}
			maxPopulation, err := intFlag(cmd, "max")
			if err != nil {
				return err
			}

			return rt.session.SpeciesAdapter(cmd.OutOrStdout()).Filter(rt.sessionContext(cmd), primary.SpeciesFilters{
				Status:        status,
				Habitat:       habitat,
				Sanctuary:     sanctuary,
				MinPopulation: minPopulation,
				MaxPopulation: maxPopulation,
			})
		},
	}
	cmd.Flags().StringP("status", "s", "", "Conservation status (e.g. \"Endangered\")")
	cmd.Flags().String("habitat", "", "Habitat type (exact)")
	cmd.Flags().String("sanctuary", "", "Sanctuary name (exact)")
	cmd.Flags().Int("min", 0, "Minimum population (inclusive)")
	cmd.Flags().Int("max", 0, "Maximum population (inclusive)")
	return cmd
}

func speciesSearchCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search names, scientific names and threats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.SpeciesAdapter(cmd.OutOrStdout()).Search(rt.sessionContext(cmd), args[0])
		},
	}
}

func speciesUpdateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [species-id]",
		Short: "Update a species for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOneOf(cmd, "population", "status", "add-threat", "add-sanctuary"); err != nil {
				return err
			}
			ctx := rt.sessionContext(cmd)
			adapter := rt.session.SpeciesAdapter(cmd.OutOrStdout())
			id := args[0]

			if population, err := intFlag(cmd, "population"); err != nil {
				return err
			} else if population != nil {
				if err := adapter.UpdatePopulation(ctx, id, *population); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("status") {
				status, _ := cmd.Flags().GetString("status")
				if err := adapter.UpdateStatus(ctx, id, status); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("add-threat") {
				threat, _ := cmd.Flags().GetString("add-threat")
				if err := adapter.AddThreat(ctx, id, threat); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("add-sanctuary") {
				sanctuary, _ := cmd.Flags().GetString("add-sanctuary")
				if err := adapter.AddSanctuary(ctx, id, sanctuary); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("population", 0, "New population")
	cmd.Flags().String("status", "", "New conservation status")
	cmd.Flags().String("add-threat", "", "Threat to add")
	cmd.Flags().String("add-sanctuary", "", "Sanctuary to add")
	return cmd
}

func speciesMergeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Add the pending species to the tracked set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.SpeciesAdapter(cmd.OutOrStdout()).Merge(rt.sessionContext(cmd))
		},
	}
}

func speciesStatsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show conservation statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.SpeciesAdapter(cmd.OutOrStdout()).Stats(rt.sessionContext(cmd))
		},
	}
}
