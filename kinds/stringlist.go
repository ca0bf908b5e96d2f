package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// StringList is a decoded indexed string list.
type StringList struct {
	Strings []string
}

// Len returns the number of strings in the list.
func (l *StringList) Len() int {
	return len(l.Strings)
}

// At returns the string at the given zero-based index, or an empty string
// and false when the index is out of range.
func (l *StringList) At(i int) (string, bool) {
	if i < 0 || i >= len(l.Strings) {
		return "", false
	}
	return l.Strings[i], true
}

// DecodeStringList decodes an indexed string list: a 16-bit count followed
// by that many length-prefixed strings, converted with the active selection.
func DecodeStringList(r *binio.Reader, _ uint32, ctx Context) (*StringList, error) {
	count, err := r.ReadU16()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("string_list", "count").Cause(err).Build()
	}
	list := StringList{Strings: make([]string, 0, count)}
	for i := 0; i < int(count); i++ {
		s, err := mactext.ReadPString(r, ctx.Sel)
		if err != nil {
			return nil, wrapStringErr(err, "string_list", "strings")
		}
		list.Strings = append(list.Strings, s)
	}
	return &list, nil
}

// PString is a decoded single length-prefixed string resource.
type PString struct {
	Value string
}

// DecodePString decodes a single length-prefixed string using the active
// selection.
func DecodePString(r *binio.Reader, _ uint32, ctx Context) (*PString, error) {
	s, err := mactext.ReadPString(r, ctx.Sel)
	if err != nil {
		return nil, wrapStringErr(err, "string")
	}
	return &PString{Value: s}, nil
}
