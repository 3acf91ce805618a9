package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/davidvella/pairheap/shortestpath"
)

func (a *app) dijkstraCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest distances over the sample map with both queues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := shortestpath.SampleMap()

			pres, err := shortestpath.Dijkstra(g, shortestpath.SampleSource, shortestpath.NewPairingFrontier())
			if err != nil {
				return err
			}
			rres, err := shortestpath.Dijkstra(g, shortestpath.SampleSource, shortestpath.NewReferenceFrontier())
			if err != nil {
				return err
			}

			tbl := newTable(a.out, "Location", "Pairing", "Reference")
			for _, v := range g.Vertices() {
				pd, _ := pres.Distance(v)
				rd, _ := rres.Distance(v)
				tbl.AddRow(v, pd, rd)
			}
			tbl.Print()

			a.log.Info("dijkstra finished",
				zap.String("source", shortestpath.SampleSource),
				zap.Int("pairing_pushes", pres.Pushes),
				zap.Int("pairing_stale", pres.Stale),
				zap.Int("reference_pushes", rres.Pushes),
				zap.Int("reference_stale", rres.Stale))
			return nil
		},
	}
}
