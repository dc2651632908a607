package commands

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/battlesnakeio/snek/watch"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "prints the latest frame of a game served with --listen",
	RunE: func(c *cobra.Command, args []string) error {
		f, err := watch.FetchState(c.Context(), apiAddr)
		if err != nil {
			return err
		}
		spew.Dump(f)
		return nil
	},
}
