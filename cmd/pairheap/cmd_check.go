package main

import (
	"github.com/jamiealquiza/tachymeter"
	"github.com/spf13/cobra"
)

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare the pairing heap with the reference queue on random keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.harness()
			if err != nil {
				return err
			}
			rep, err := h.Compare(cmd.Context())
			if rep != nil {
				tbl := newTable(a.out, "Run", "Count", "Links", "Mismatches", "Elapsed")
				tbl.AddRow(rep.RunID, rep.Count, rep.Links, rep.Mismatches, rep.Elapsed)
				tbl.Print()
			}
			return err
		},
	}
}

func (a *app) stressCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "stress",
		Short: "Fill both queues with a large input and show the first minima of each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.harness()
			if err != nil {
				return err
			}
			rep, err := h.Stress(cmd.Context())
			if rep != nil {
				tbl := newTable(a.out, "#", "Pairing Key", "Pairing Payload", "Reference Key", "Reference Payload")
				for i := range rep.Pairing {
					p, r := rep.Pairing[i], rep.Reference[i]
					tbl.AddRow(i+1, p.Key, p.Payload, r.Key, r.Payload)
				}
				tbl.Print()
				newTable(a.out, "Run", "Count", "Mismatches", "Elapsed").
					AddRow(rep.RunID, rep.Count, rep.Mismatches, rep.Elapsed).
					Print()
			}
			return err
		},
	}
	c.Flags().Int("peek", 5, "minima to show")
	return c
}

func (a *app) mergeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "merge",
		Short: "Merge two random heaps and check the union",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.harness()
			if err != nil {
				return err
			}
			rep, err := h.Union(cmd.Context(), a.conf.Left, a.conf.Right)
			if rep != nil {
				tbl := newTable(a.out, "Run", "Left", "Right", "Merged", "Donor", "Mismatches", "Elapsed")
				tbl.AddRow(rep.RunID, rep.Left, rep.Right, rep.Merged, rep.DonorLen, rep.Mismatches, rep.Elapsed)
				tbl.Print()
			}
			return err
		},
	}
	c.Flags().Int("left", 500, "size of the receiving heap")
	c.Flags().Int("right", 500, "size of the merged-in heap")
	return c
}

func (a *app) benchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bench",
		Short: "Time insert-and-drain rounds of both queues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.harness()
			if err != nil {
				return err
			}
			rep, err := h.Bench(cmd.Context())
			if err != nil {
				return err
			}
			tbl := newTable(a.out, "Queue", "Rounds", "Min", "P50", "P99", "Max", "Cumulative")
			for _, row := range []struct {
				name string
				m    *tachymeter.Metrics
			}{
				{"pairing", rep.Pairing},
				{"reference", rep.Reference},
			} {
				tbl.AddRow(row.name, rep.Rounds, row.m.Time.Min, row.m.Time.P50, row.m.Time.P99, row.m.Time.Max, row.m.Time.Cumulative)
			}
			tbl.Print()
			return nil
		},
	}
	c.Flags().Int("rounds", 10, "timed rounds per queue")
	return c
}
