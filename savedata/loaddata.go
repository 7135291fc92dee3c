package savedata

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnreadableSource is returned when the input cannot be opened or decoded
// in the declared charset.
var ErrUnreadableSource = errors.New("unreadable source")

const DefaultCharset = "UTF-8"

// LookupCharset resolves an IANA charset name. An empty name means UTF-8.
func LookupCharset(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCharset
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "charset %q: %v", name, err)
	}
	if enc == nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "charset %q is not supported", name)
	}
	return enc, nil
}

// ReadText reads the whole file at path and converts it from charset to
// UTF-8. A leading byte order mark is honored and removed.
func ReadText(path, charset string) ([]byte, error) {
	enc, err := LookupCharset(charset)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "open %s: %v", path, err)
	}
	defer f.Close()
	return decodeText(f, enc)
}

// decodeText fails on byte sequences the charset cannot represent instead of
// substituting U+FFFD for them.
func decodeText(r io.Reader, enc encoding.Encoding) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "read: %v", err)
	}
	if enc == unicode.UTF8 && !utf8.Valid(raw) {
		return nil, errors.Wrap(ErrUnreadableSource, "decode: invalid UTF-8")
	}
	b, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), raw)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableSource, "decode: %v", err)
	}
	if !utf8.Valid(b) {
		return nil, errors.Wrap(ErrUnreadableSource, "decode: invalid UTF-8")
	}
	if bytes.ContainsRune(b, utf8.RuneError) {
		// a replacement character that does not encode back was not in the input
		if _, err := enc.NewEncoder().Bytes(b); err != nil {
			return nil, errors.Wrapf(ErrUnreadableSource, "decode: bytes not valid in charset: %v", err)
		}
	}
	return b, nil
}
