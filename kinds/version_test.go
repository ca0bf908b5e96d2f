package kinds

import (
	"errors"
	"testing"

	"github.com/cinegraph/rsrc-engine/binio"
	rerr "github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

func versionBytes(stage uint8, country uint16, short, long string) []byte {
	b := []byte{1, 2, stage, 3, byte(country >> 8), byte(country)}
	b = append(b, byte(len(short)))
	b = append(b, short...)
	b = append(b, byte(len(long)))
	b = append(b, long...)
	return b
}

func TestDecodeVersion(t *testing.T) {
	raw := versionBytes(uint8(StageBeta), uint16(mactext.CountryGermany), "1.2b3", "1.2b3 \xa9 1994")
	v, err := DecodeVersion(binio.NewBytesReader(raw), uint32(len(raw)), Context{Sel: mactext.RomanSelection()})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Number.Major != 1 || v.Number.Minor != 2 || v.Number.Revision != 3 {
		t.Errorf("number = %+v, want 1.2 rev 3", v.Number)
	}
	if v.Number.Stage != StageBeta {
		t.Errorf("stage = %v, want beta", v.Number.Stage)
	}
	if v.Country != mactext.CountryGermany {
		t.Errorf("country = %d, want Germany", v.Country)
	}
	if v.Short != "1.2b3" {
		t.Errorf("short = %q", v.Short)
	}
	// 0xa9 is the copyright sign in the roman encoding.
	if v.Long != "1.2b3 © 1994" {
		t.Errorf("long = %q", v.Long)
	}
}

func TestDecodeVersion_BadStage(t *testing.T) {
	for _, stage := range []uint8{0x00, 0x21, 0x50, 0xff} {
		raw := versionBytes(stage, 0, "", "")
		_, err := DecodeVersion(binio.NewBytesReader(raw), uint32(len(raw)), Context{Sel: mactext.RomanSelection()})
		var e *rerr.Error
		if !errors.As(err, &e) || e.Kind != rerr.KindMalformedDiscriminant {
			t.Fatalf("stage %#x: err = %v, want malformed_discriminant", stage, err)
		}
	}
}

func TestDecodeVersion_BadCountry(t *testing.T) {
	for _, country := range []uint16{38, 63, 89, 108, 0xffff} {
		raw := versionBytes(uint8(StageFinal), country, "", "")
		_, err := DecodeVersion(binio.NewBytesReader(raw), uint32(len(raw)), Context{Sel: mactext.RomanSelection()})
		var e *rerr.Error
		if !errors.As(err, &e) || e.Kind != rerr.KindMalformedDiscriminant {
			t.Fatalf("country %d: err = %v, want malformed_discriminant", country, err)
		}
	}
}

func TestDecodeVersion_TruncatedString(t *testing.T) {
	raw := versionBytes(uint8(StageDev), 0, "ok", "")
	raw = raw[:len(raw)-2] // cut into the short string
	_, err := DecodeVersion(binio.NewBytesReader(raw), uint32(len(raw)), Context{Sel: mactext.RomanSelection()})
	if err == nil {
		t.Fatal("expected error on truncated string")
	}
}
