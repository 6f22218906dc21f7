package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/sghaida/patterns/internal/catalog"
)

var errNothingToRun = errors.New("nothing to run: pass pattern names, --category or --all")

func newRunCmd(a *app) *cobra.Command {
	var (
		all         bool
		category    string
		parallelism int
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "run [name...]",
		Short: "Run pattern demos",
		Long:  "Runs the named demos (or a whole category, or everything) concurrently and prints their output in order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = a.close() }()

			patterns, err := a.selectPatterns(args, all, category)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("parallel") {
				parallelism = a.cfg.Parallelism
			}

			metrics, err := catalog.NewMetrics(prometheus.NewRegistry())
			if err != nil {
				return err
			}

			runner := catalog.NewRunner(
				catalog.WithParallelism(parallelism),
				catalog.WithLogger(a.logger),
				catalog.WithMetrics(metrics),
			)
			out := cmd.OutOrStdout()
			runErr := runner.Run(cmd.Context(), out, patterns...)

			if showMetrics {
				fmt.Fprintln(out)
				if err := metrics.WriteText(out); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Run every pattern")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Run every pattern of one category")
	cmd.Flags().IntVarP(&parallelism, "parallel", "p", 0, "Maximum demos running at once (default from config)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print run metrics in Prometheus text format")
	return cmd
}

// selectPatterns resolves the explicit names first, then appends the category
// or full listing without repeating a pattern.
func (a *app) selectPatterns(names []string, all bool, category string) ([]catalog.Pattern, error) {
	selected, err := a.registry.Lookup(names...)
	if err != nil {
		return nil, err
	}

	var extra []catalog.Pattern
	switch {
	case all:
		extra = a.registry.List("")
	case category != "":
		c, err := catalog.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		extra = a.registry.List(c)
	}

	seen := make(map[string]bool, len(selected))
	for _, p := range selected {
		seen[p.Name] = true
	}
	for _, p := range extra {
		if !seen[p.Name] {
			seen[p.Name] = true
			selected = append(selected, p)
		}
	}

	if len(selected) == 0 {
		return nil, errNothingToRun
	}
	return selected, nil
}
