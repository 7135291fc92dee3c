package savedata

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const DefaultDelimiter = '\t'

// PlatformLineEnding is the line terminator of the running OS.
func PlatformLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// SaveCSV accumulates delimited rows. Fields are written as is, without
// quoting, and rows are separated by LineEnding with no terminator after
// the last one.
type SaveCSV struct {
	Name       string
	Delimiter  rune
	LineEnding string
	Data       [][]string
}

func NewCSV(delimiter rune, lineEnding string) *SaveCSV {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	if lineEnding == "" {
		lineEnding = PlatformLineEnding()
	}
	return &SaveCSV{Delimiter: delimiter, LineEnding: lineEnding, Data: make([][]string, 0)}
}

//Append one row to csv data, no actual write
func (mycsv *SaveCSV) AddOneToCSV(data []string) {
	mycsv.Data = append(mycsv.Data, data)
}

func (mycsv *SaveCSV) String() string {
	var b strings.Builder
	delim := string(mycsv.Delimiter)
	for i, row := range mycsv.Data {
		if i > 0 {
			b.WriteString(mycsv.LineEnding)
		}
		b.WriteString(strings.Join(row, delim))
	}
	return b.String()
}

func (mycsv *SaveCSV) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, mycsv.String())
	return int64(n), err
}

// SaveFile writes the rows to filename, replacing any existing file.
func (mycsv *SaveCSV) SaveFile(filename string) error {
	return writeFile(filename, mycsv.String())
}

func writeFile(filename, text string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "fail to create CSV")
	}
	if _, err := io.WriteString(file, text); err != nil {
		file.Close()
		return errors.Wrapf(err, "error writing %s", filename)
	}
	return file.Close()
}
