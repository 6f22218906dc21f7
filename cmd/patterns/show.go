package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/internal/catalog"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Describe one pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := a.registry.Resolve(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return &catalog.UnknownPatternError{Name: args[0]}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:     %s\n", p.Name)
			fmt.Fprintf(out, "Category: %s\n", p.Category)
			fmt.Fprintf(out, "Summary:  %s\n", p.Summary)
			return nil
		},
	}
}
