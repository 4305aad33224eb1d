package transformers

import "strings"

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// Location returns the last comma-delimited segment of the address, trimmed.
// An address with no comma yields an empty location; that behavior is kept
// as observed in production data rather than guessed at.
func (t *addressTransformer) Location(address string) string {
	idx := strings.LastIndex(address, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(address[idx+1:])
}
