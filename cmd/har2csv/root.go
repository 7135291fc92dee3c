package main

import (
	"io"
	"unicode/utf8"

	"hartools/common"
	"hartools/harcsv"
	"hartools/harlog"
	"hartools/savedata"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// autoPath is the value of a bare --stats-json or --plot-dir.
const autoPath = "auto"

type options struct {
	charset    string
	delimiter  string
	lineEnding string
	output     string
	statsJSON  string
	plotDir    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "har2csv <file.har>",
		Short: "Convert a HAR capture to delimited text and print timing statistics",
		Long: `har2csv flattens every entry of a HAR capture into one delimited row
and reports count, min, mean, standard deviation, median, 90th/99th
percentile and max for the total time, each timing phase and the
response content size (in kilobytes).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := common.NewLogger(opts.logLevel)
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			defer logger.Sync()
			return run(args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		},
	}
	addFlags(cmd.Flags(), &opts)
	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.charset, "charset", savedata.DefaultCharset, "character encoding of the HAR file")
	flags.StringVarP(&opts.delimiter, "delimiter", "d", `\t`, "single character separating fields")
	flags.StringVar(&opts.lineEnding, "line-ending", "platform", "row terminator: platform, lf or crlf")
	flags.StringVarP(&opts.output, "output", "o", "", "CSV destination (default <file>.csv, - for stdout)")
	flags.StringVar(&opts.statsJSON, "stats-json", "", "also write the statistics as JSON to this path (bare flag: <file>.stats.json)")
	flags.StringVar(&opts.plotDir, "plot-dir", "", "render an ECDF plot per observed field into this directory (bare flag: plots/ next to <file>)")
	flags.Lookup("stats-json").NoOptDefVal = autoPath
	flags.Lookup("plot-dir").NoOptDefVal = autoPath
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parseLineEnding(s string) (string, error) {
	switch s {
	case "", "platform":
		return savedata.PlatformLineEnding(), nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	}
	return "", errors.Errorf("unknown line ending %q", s)
}

func run(harpath string, opts options, stdout, diagnostics io.Writer, logger *zap.Logger) error {
	delimiter, err := parseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}
	lineEnding, err := parseLineEnding(opts.lineEnding)
	if err != nil {
		return err
	}
	fp, err := common.CheckDataFiles(harpath)
	if err != nil {
		return errors.Wrap(savedata.ErrUnreadableSource, err.Error())
	}
	text, err := savedata.ReadText(fp.Har, opts.charset)
	if err != nil {
		return err
	}
	logger.Info("loaded HAR file",
		zap.String("path", fp.Har),
		zap.String("size", humanize.Bytes(uint64(fp.HarSize))),
		zap.String("charset", opts.charset),
	)
	doc, err := harlog.Parse(text)
	if err != nil {
		return err
	}
	if creator := doc.Creator(); creator != "" {
		logger.Debug("HAR producer", zap.String("creator", creator), zap.String("version", doc.Version()))
	}

	res, err := harcsv.Convert(doc, harcsv.Options{
		Delimiter:   delimiter,
		LineEnding:  lineEnding,
		Diagnostics: diagnostics,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = fp.CSV
	}
	if output == "-" {
		if _, err := res.Table.WriteTo(stdout); err != nil {
			return errors.Wrap(err, "write CSV")
		}
	} else {
		if err := res.Table.SaveFile(output); err != nil {
			return err
		}
		logger.Info("wrote CSV", zap.String("path", output), zap.Int("rows", res.Rows))
	}

	statsJSON := opts.statsJSON
	if statsJSON == autoPath {
		statsJSON = fp.StatsJSON
	}
	if statsJSON != "" {
		if err := savedata.SaveJSON(statsJSON, res.Summaries); err != nil {
			return err
		}
		logger.Info("wrote statistics", zap.String("path", statsJSON))
	}
	plotDir := opts.plotDir
	if plotDir == autoPath {
		plotDir = fp.PlotDir
	}
	if plotDir != "" {
		if err := savePlots(plotDir, res.Aggregator, logger); err != nil {
			return err
		}
	}
	return nil
}

func savePlots(plotdir string, agg *common.Aggregator, logger *zap.Logger) error {
	if err := common.Makeplotdir(plotdir); err != nil {
		return errors.Wrap(err, "create plot directory")
	}
	scales := make(map[common.Field]common.Tracked)
	for _, tr := range common.ReportOrder() {
		scales[tr.Field] = tr
	}
	for _, field := range agg.Fields() {
		samples := agg.Set(field).Values()
		xlabel := "ms"
		if tr, ok := scales[field]; ok && tr.Scale == common.ScaleKiloBytes {
			xlabel = "KB"
			for i := range samples {
				samples[i] /= tr.Scale
			}
		}
		name := common.Getfilename(plotdir, field)
		if err := savedata.SaveECDFPlot(name, field.String(), xlabel, samples); err != nil {
			return err
		}
		logger.Debug("wrote plot", zap.String("path", name))
	}
	return nil
}
