// Command wing lofts a wing from curve files and writes its print files,
// panel sketches, previews and section plots.
//
// Curves are read from a directory holding one file per curve, named after
// its integer id (3.dxf, 4.geojson). The wing parameters come from an XML
// record and may be overridden by flags.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/soypat/wing"
	"github.com/soypat/wing/sketch"
	"github.com/spf13/cobra"
)

var (
	curveDir   string
	recordPath string
	slotIDs    [5]int
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "wing",
	Short: "Loft, mesh and decompose wings from profile curves",
	Long: `Loft a 3D wing from its leading edge, trailing edge, root and tip
profiles and optional twist angle graph, then export it for printing.

Curves are loaded from --curves, a directory of DXF or GeoJSON files named
<id>.dxf or <id>.geojson. Wing parameters are read from the XML record
given by --record; curve ids may be set or overridden with flags.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		wing.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&curveDir, "curves", "c", ".", "directory of curve files named by id")
	f.StringVarP(&recordPath, "record", "r", "", "XML record with wing parameters")
	f.IntVar(&slotIDs[wing.LeadingEdge], "le", 0, "leading edge curve id")
	f.IntVar(&slotIDs[wing.TrailingEdge], "te", 0, "trailing edge curve id")
	f.IntVar(&slotIDs[wing.RootProfile], "root", 0, "root profile curve id")
	f.IntVar(&slotIDs[wing.TipProfile], "tip", 0, "tip profile curve id")
	f.IntVar(&slotIDs[wing.AngleGraph], "angle", 0, "twist angle graph curve id")
	f.BoolVarP(&verbose, "verbose", "v", false, "log skipped sections and other debug records")
}

// loadWing builds the wing described by the persistent flags.
func loadWing() (*wing.Wing, *sketch.Store, error) {
	store := sketch.NewStore()
	if err := store.LoadDir(curveDir); err != nil {
		return nil, nil, fmt.Errorf("loading curves: %w", err)
	}
	w := wing.New(store)
	if recordPath != "" {
		fp, err := os.Open(recordPath)
		if err != nil {
			return nil, nil, err
		}
		defer fp.Close()
		r, err := wing.DecodeRecord(fp)
		if err != nil {
			return nil, nil, fmt.Errorf("reading record %s: %w", recordPath, err)
		}
		w.ReadRecord(r)
	}
	for i, id := range slotIDs {
		if id != 0 {
			w.SetCurve(wing.CurveSlot(i), id)
		}
	}
	for i := range slotIDs {
		slot := wing.CurveSlot(i)
		id := w.CurveID(slot)
		if id != 0 && store.Curve(id) == nil {
			return nil, nil, fmt.Errorf("%s: no curve with id %d in %s", slot, id, curveDir)
		}
	}
	return w, store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
