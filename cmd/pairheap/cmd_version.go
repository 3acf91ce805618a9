package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, BuildDetails())
			return err
		},
	}
}

func BuildDetails() string {
	if version == "" {
		return "pairheap (unknown version)"
	}

	return fmt.Sprintf(`pairheap %v
Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v`,
		version,
		commit,
		date,
		runtime.Version())
}
