package main

import (
	"fmt"

	"github.com/soypat/wing"
	"github.com/spf13/cobra"
)

var sketchOpts = wing.DefaultSketchOptions()

var sketchesCmd = &cobra.Command{
	Use:   "sketches",
	Short: "Write the flattened outline of a skin panel as DXF",
	Long: `Unfold the skin panel over one trailing edge span into the plane and
write its inset outline and triangle edges to a DXF file. The drawing is
read back into the curve store and the ids of the new curves printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, store, err := loadWing()
		if err != nil {
			return err
		}
		before := store.Len()
		paths, err := w.MakeSketches(store, sketchOpts)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no panel at span %d", sketchOpts.SectionIndex)
		}
		ids := store.IDs()
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported curves %v\n", ids[before:])
		return nil
	},
}

func init() {
	f := sketchesCmd.Flags()
	f.IntVar(&sketchOpts.SectionIndex, "span", sketchOpts.SectionIndex, "trailing edge span of the panel")
	f.Float64Var(&sketchOpts.Inset, "inset", sketchOpts.Inset, "inset of the panel outline")
	f.StringVarP(&sketchOpts.Dir, "out", "o", "", "output directory, default the system temp dir")
	rootCmd.AddCommand(sketchesCmd)
}
