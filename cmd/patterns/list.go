package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available patterns grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories := catalog.Categories
			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []catalog.Category{c}
			}

			out := cmd.OutOrStdout()
			for i, c := range categories {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, CategoryStyle.Render(strings.ToUpper(string(c))))
				for _, p := range a.registry.List(c) {
					fmt.Fprintf(out, "  %s %s\n", NameStyle.Render(p.Name), SummaryStyle.Render(p.Summary))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one category (behavioral, creational, structural)")
	return cmd
}
