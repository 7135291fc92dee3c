package savedata

import (
	"io"
	"os"

	"hartools/common"

	"github.com/pkg/errors"
)

// SaveJSON writes data as indented JSON to path, truncating the file.
func SaveJSON(path string, data interface{}) error {
	r, err := common.MarshalResult(data)
	if err != nil {
		return errors.Wrap(err, "marshal json")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "SaveJSON error")
	}
	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}

func LoadJSON(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return common.UnMarshalResult(f, data)
}
