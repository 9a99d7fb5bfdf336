package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/logging"
	"github.com/llehouerou/marquee/internal/state"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured carousels and their saved positions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		carousels := cfg.Discover(logging.NewNop())
		if len(carousels) == 0 {
			fmt.Println("No carousels configured.")
			return nil
		}

		saved := map[string]state.Position{}
		if store, err := state.Open(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			positions, err := store.ListPositions()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", errmsg.Format(errmsg.OpStateLoad, err))
			}
			for _, p := range positions {
				saved[p.Name] = p
			}
			store.Close()
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tVARIANT\tINTERVAL\tCARDS\tPOSITION")
		for _, c := range carousels {
			cards := fmt.Sprint(len(c.Items))
			if c.DeckPath != "" {
				cards += " + " + c.DeckPath
			}
			pos := "-"
			if p, ok := saved[c.Name]; ok {
				pos = fmt.Sprintf("%d (%s)", p.Index+1, humanize.Time(p.UpdatedAt))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Variant, c.Interval, cards, pos)
		}
		return w.Flush()
	},
}
