package main

import (
	"github.com/soypat/wing/render"
	"github.com/spf13/cobra"
)

var previewCfg render.PreviewConfig

var previewCmd = &cobra.Command{
	Use:   "preview <file.png>",
	Short: "Render the wing to a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, _, err := loadWing()
		if err != nil {
			return err
		}
		p := render.NewPreview()
		w.Render(p, false)
		return p.SavePNG(args[0], previewCfg)
	},
}

func init() {
	f := previewCmd.Flags()
	f.IntVar(&previewCfg.Width, "width", 800, "image width in pixels")
	f.IntVar(&previewCfg.Height, "height", 600, "image height in pixels")
	f.IntVar(&previewCfg.Supersample, "supersample", 2, "antialiasing supersample factor")
	rootCmd.AddCommand(previewCmd)
}
