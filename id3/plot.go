package id3

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/goid3/pkg/errors"
)

// SaveTracePlot renders a pruning trace as a line plot of validation
// accuracy per trial and writes it to path. The image format follows the
// path's extension (.png, .svg, .pdf, ...).
func SaveTracePlot(trace []TrialScore, title, path string) error {
	if len(trace) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "goid3: SaveTracePlot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Trial"
	p.Y.Label.Text = "Validation accuracy (%)"

	pts := make(plotter.XYs, len(trace))
	for i, score := range trace {
		pts[i].X = float64(score.Trial)
		pts[i].Y = score.Accuracy
	}

	if err := plotutil.AddLinePoints(p, "accuracy", pts); err != nil {
		return errors.Wrap(err, "goid3: SaveTracePlot")
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "goid3: SaveTracePlot")
	}
	return nil
}
