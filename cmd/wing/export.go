package main

import (
	"fmt"
	"strings"

	"github.com/soypat/wing"
	"github.com/soypat/wing/helpers/matter"
	"github.com/soypat/wing/render"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	ascii    bool
	bundle   bool
	material string
	pieces   int
}

var exportCmd = &cobra.Command{
	Use:   "export <file.stl>",
	Short: "Write the wing, pattern and section STL files",
	Long: `Write the wing solid to the given path, the lightening pattern solid to
"<stem> pattern.stl" and every cuboid section to "<stem> sectionNN.stl".
A path of "-" writes only the wing solid to standard output as binary STL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, _, err := loadWing()
		if err != nil {
			return err
		}
		opts := wing.ExportOptions{ASCII: exportFlags.ascii, Bundle: exportFlags.bundle}
		if exportFlags.material != "" {
			m, ok := matter.Lookup(strings.ToLower(exportFlags.material))
			if !ok {
				return fmt.Errorf("unknown material %q", exportFlags.material)
			}
			opts.Material = &m
		}
		if args[0] == "-" {
			solid := w.MakeSolid()
			if opts.Material != nil {
				solid = opts.Material.Scale(solid)
			}
			return render.WriteSTL(cmd.OutOrStdout(), solid.Triangles)
		}
		if cmd.Flags().Changed("pieces") {
			p := w.Params()
			p.SplitIntoPieces = exportFlags.pieces
			w.SetParams(p)
		}
		files, err := w.ExportFiles(args[0], opts)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	},
}

func init() {
	f := exportCmd.Flags()
	f.BoolVar(&exportFlags.ascii, "ascii", false, "write ASCII STL files")
	f.BoolVar(&exportFlags.bundle, "zip", false, "also bundle the files into <stem>.zip")
	f.StringVar(&exportFlags.material, "material", "", "compensate shrinkage of print material (pla, petg)")
	f.IntVar(&exportFlags.pieces, "pieces", 0, "number of cuboid sections, overrides the record")
	rootCmd.AddCommand(exportCmd)
}
