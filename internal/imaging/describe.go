package imaging

import "fmt"

// Describe renders the metadata as a sentence. A non-empty signature is
// appended in parentheses.
func Describe(m Metadata, signature string) string {
	text := fmt.Sprintf("This is an image with dimensions %dx%d, format %s, and mode %s.", m.Width, m.Height, m.Format, m.Mode)
	if signature != "" {
		text += " (" + signature + ")"
	}
	return text
}

// Process strips an optional data URI header, decodes the base64 payload and
// inspects the resulting image.
func Process(payload string) (Metadata, error) {
	data, err := DecodeBase64(StripDataURI(payload))
	if err != nil {
		return Metadata{}, err
	}
	return Inspect(data)
}
