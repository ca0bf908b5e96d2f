package mactext

import "github.com/cinegraph/rsrc-engine/binio"

// ReadPString reads a length-prefixed byte string from r and converts it to
// native text through the given selection.
func ReadPString(r *binio.Reader, sel Selection) (string, error) {
	raw, err := r.ReadPString()
	if err != nil {
		return "", err
	}
	return DecodeString(raw, sel)
}
