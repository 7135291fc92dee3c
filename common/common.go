package common

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func MarshalResult(v interface{}) (io.Reader, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

func UnMarshalResult(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

//plot file for one field inside plotdir, e.g. plots/timings_dns.png
func Getfilename(plotdir string, field Field) string {
	return filepath.Join(plotdir, field.Context+"_"+field.Name+".png")
}

func Makeplotdir(plotdir string) error {
	return os.MkdirAll(plotdir, 0775)
}
