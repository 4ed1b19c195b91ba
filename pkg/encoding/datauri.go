package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrNotDataURI is returned for strings without a "data:" scheme.
var ErrNotDataURI = errors.New("not a data URI")

// DecodeDataURI decodes a base64 data URI such as a server favicon
// ("data:image/png;base64,iVBOR..."). It returns the payload and its media
// type. Whitespace inside the payload is ignored.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return nil, "", ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", errors.New("data URI: missing payload separator")
	}

	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if mediaType == "" {
		mediaType = "text/plain"
	}
	if !isBase64 {
		return []byte(payload), mediaType, nil
	}

	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, payload)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("data URI: decoding payload: %w", err)
		}
	}
	return data, mediaType, nil
}
