package savedata

import (
	"hartools/common"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveECDFPlot renders the empirical CDF of samples as an image at filename;
// the format follows the file extension.
func SaveECDFPlot(filename, title, xlabel string, samples []float64) error {
	if len(samples) == 0 {
		return errors.Errorf("no samples for %s", title)
	}
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "CDF"
	p.Y.Min = 0
	p.Y.Max = 1
	if err := plotutil.AddLinePoints(p, title, common.ECDF(samples)); err != nil {
		return errors.Wrap(err, "add ecdf")
	}
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "save plot %s", filename)
	}
	return nil
}
