package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the wing parameters, bounds and record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, _, err := loadWing()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, p := range w.Properties() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Title, p.Kind, p)
		}
		box := w.Box()
		solid := w.MakeSolid()
		fmt.Fprintf(tw, "curve bounds\t\t%v %v\n", box.Min, box.Max)
		fmt.Fprintf(tw, "solid triangles\t\t%d\n", solid.Len())
		if solid.Len() > 0 {
			b := solid.Bounds()
			fmt.Fprintf(tw, "solid bounds\t\t%v %v\n", b.Min, b.Max)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		r := w.Record()
		if err := r.Encode(out); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
