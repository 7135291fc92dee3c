package harcsv

import (
	"io"
	"strings"

	"hartools/common"
	"hartools/harlog"
	"hartools/savedata"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options struct {
	// Delimiter separates fields; zero means tab.
	Delimiter rune
	// LineEnding separates rows; empty means the platform terminator.
	LineEnding string
	// Diagnostics receives the statistics report, if set.
	Diagnostics io.Writer
	Logger      *zap.Logger
}

type Result struct {
	// Table holds the header and one row per entry.
	Table      *savedata.SaveCSV
	CSV        string
	Rows       int
	Report     string
	Summaries  []common.Summary
	Aggregator *common.Aggregator
}

// Convert flattens every entry of doc into one delimited row and computes
// the statistics of the tracked fields. Each call starts from empty sample
// sets. Any entry lacking a required sub-tree fails the whole conversion.
func Convert(doc *harlog.Document, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mycsv := savedata.NewCSV(opts.Delimiter, opts.LineEnding)
	agg := common.NewAggregator()

	mycsv.AddOneToCSV(Header())
	for _, e := range doc.Entries() {
		row, err := convertEntry(e, agg)
		if err != nil {
			return nil, err
		}
		mycsv.AddOneToCSV(row)
	}
	logger.Debug("rows converted", zap.Int("entries", len(doc.Entries())))

	res := &Result{
		Table:      mycsv,
		CSV:        mycsv.String(),
		Rows:       len(doc.Entries()),
		Aggregator: agg,
	}
	var report strings.Builder
	for _, tr := range common.ReportOrder() {
		sum := agg.Summarize(tr.Field, tr.Scale)
		res.Summaries = append(res.Summaries, sum)
		report.WriteString(sum.String())
		report.WriteString("\n")
		if !sum.Found {
			logger.Debug("no samples", zap.Stringer("field", tr.Field))
		}
	}
	res.Report = report.String()
	if opts.Diagnostics != nil {
		if _, err := io.WriteString(opts.Diagnostics, res.Report); err != nil {
			return nil, errors.Wrap(err, "write statistics report")
		}
	}
	return res, nil
}

func convertEntry(e harlog.Entry, agg *common.Aggregator) ([]string, error) {
	n, err := resolve(e)
	if err != nil {
		return nil, err
	}
	row := make([]string, len(columns))
	for i, c := range columns {
		text := c.value(n)
		if c.track != nil {
			if err := agg.Observe(*c.track, text); err != nil {
				return nil, errors.Wrapf(err, "entry %d", e.Index)
			}
		}
		row[i] = text
	}
	return row, nil
}
