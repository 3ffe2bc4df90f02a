package main

import (
	"errors"
	"fmt"

	"github.com/soypat/wing/sketch"
	"github.com/spf13/cobra"
)

var plotSections int

var plotCmd = &cobra.Command{
	Use:   "plot <file.png|svg|pdf>",
	Short: "Plot unit chord sections from root to tip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotSections < 2 {
			return errors.New("need at least two sections")
		}
		w, _, err := loadWing()
		if err != nil {
			return err
		}
		var series []sketch.Series
		for i := 0; i < plotSections; i++ {
			t := float64(i) / float64(plotSections-1)
			pts, ok := w.UnitizedSectionPoints(t)
			if !ok {
				return errors.New("root and tip profiles are required")
			}
			series = append(series, sketch.Series{Name: fmt.Sprintf("%.2f", t), Points: pts})
		}
		return sketch.PlotSections(args[0], "Unit sections", series)
	},
}

func init() {
	plotCmd.Flags().IntVarP(&plotSections, "sections", "n", 5, "number of sections including root and tip")
	rootCmd.AddCommand(plotCmd)
}
