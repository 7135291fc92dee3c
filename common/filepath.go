package common

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type FilePaths struct {
	Har       string
	HarSize   int64
	CSV       string
	StatsJSON string
	PlotDir   string
}

//input is the path to the HAR capture; outputs default to siblings of it
func CheckDataFiles(harpath string) (*FilePaths, error) {
	info, err := os.Stat(harpath)
	if err != nil {
		return nil, errors.Wrap(err, "no HAR file")
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", harpath)
	}
	basename := harpath[:len(harpath)-len(filepath.Ext(harpath))]
	fp := &FilePaths{
		Har:       harpath,
		HarSize:   info.Size(),
		CSV:       basename + ".csv",
		StatsJSON: basename + ".stats.json",
		PlotDir:   filepath.Join(filepath.Dir(harpath), "plots"),
	}
	return fp, nil
}
