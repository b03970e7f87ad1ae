package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/elattr/internal/descriptor"
)

func (app *cli) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print an element's attributes",
		Long: `Build the element described by FILE (a path or s3://bucket/key URI)
and print its kind, attributes (in store order) and children as JSON.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.loader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := descriptor.MarshalReport(e)
			if err != nil {
				return err
			}
			app.logger.Debug("inspected element", "file", args[0], "kind", e.Kind(), "attrs", e.Attrs().Len())
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
