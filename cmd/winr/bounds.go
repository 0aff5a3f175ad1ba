package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GasparKral/WinR/internal/geom"
	"github.com/GasparKral/WinR/internal/layoutfile"
)

type boundsRow struct {
	Name    string           `json:"name"`
	ID      uint64           `json:"id"`
	Mode    geom.SizingMode  `json:"sizing_mode"`
	Visible bool             `json:"visible"`
	Corners [4]geom.Position `json:"corners"`
	Width   uint16           `json:"width"`
	Height  uint16           `json:"height"`
}

func newBoundsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print the computed bounds of every component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.load(args[0])
			if err != nil {
				return err
			}
			rows := boundsRows(set)
			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return printBounds(a, rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func boundsRows(set *layoutfile.Set) []boundsRow {
	rows := make([]boundsRow, 0, set.Len())
	for _, name := range set.Names() {
		b, _ := set.Get(name)
		bounds := b.ResolveBounds()
		rows = append(rows, boundsRow{
			Name:    name,
			ID:      uint64(b.ID()),
			Mode:    b.SizingMode(),
			Visible: b.Visible(),
			Corners: bounds.Corners(),
			Width:   bounds.Width(),
			Height:  bounds.Height(),
		})
	}
	return rows
}

func printBounds(a *app, rows []boundsRow) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tMODE\tVISIBLE\tP0\tP1\tP2\tP3\tSIZE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%t\t%s\t%s\t%s\t%s\t%dx%d\n",
			r.Name, r.ID, r.Mode, r.Visible,
			r.Corners[0], r.Corners[1], r.Corners[2], r.Corners[3],
			r.Width, r.Height)
	}
	return tw.Flush()
}
