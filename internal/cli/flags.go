package cli

import (
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/keeper/internal/core/records"
)

// intFlag returns a pointer to the flag's value, or nil when it was not set.
func intFlag(cmd *cobra.Command, name string) (*int, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil, records.InvalidArgument("--%s: %v", name, err)
	}
	return &v, nil
}

// floatFlag returns a pointer to the flag's value, or nil when it was not set.
func floatFlag(cmd *cobra.Command, name string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil, records.InvalidArgument("--%s: %v", name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, records.InvalidArgument("--%s must be a finite number", name)
	}
	return &v, nil
}

// requireOneOf fails unless at least one of the named flags was set.
func requireOneOf(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return nil
		}
	}
	return records.InvalidArgument("specify at least one of: --%s", strings.Join(names, ", --"))
}
