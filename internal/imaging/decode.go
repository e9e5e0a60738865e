package imaging

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrDecode is returned when a payload is valid base64 in neither the
// standard nor the URL-safe alphabet.
var ErrDecode = errors.New("invalid base64 image data")

var dataURIPrefix = regexp.MustCompile(`^data:image/.+;base64,`)

// StripDataURI removes a leading "data:image/<subtype>;base64," header.
// Strings without the header are returned unchanged.
func StripDataURI(payload string) string {
	return dataURIPrefix.ReplaceAllString(payload, "")
}

// PadBase64 appends '=' until the length is a multiple of four.
func PadBase64(payload string) string {
	if rem := len(payload) % 4; rem != 0 {
		payload += strings.Repeat("=", 4-rem)
	}
	return payload
}

// DecodeBase64 decodes payload with the standard alphabet, falling back to
// the URL-safe alphabet. Missing padding is tolerated.
func DecodeBase64(payload string) ([]byte, error) {
	padded := PadBase64(strings.TrimSpace(payload))

	data, stdErr := base64.StdEncoding.DecodeString(padded)
	if stdErr == nil {
		return data, nil
	}
	data, urlErr := base64.URLEncoding.DecodeString(padded)
	if urlErr == nil {
		return data, nil
	}
	return nil, errors.Wrapf(ErrDecode, "%v", stdErr)
}
