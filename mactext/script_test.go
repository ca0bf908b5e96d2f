package mactext

import (
	"errors"
	"testing"

	rerr "github.com/cinegraph/rsrc-engine/errors"
)

func TestDecodeString_Roman(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("Hello"), "Hello"},
		{"empty", nil, ""},
		// MacRoman 0xA5 is the bullet, 0x8E is e-acute.
		{"high bytes", []byte{0xa5, ' ', 0x8e}, "• é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.in, RomanSelection())
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeString_Cyrillic(t *testing.T) {
	// Mac Cyrillic 0x80 is CYRILLIC CAPITAL LETTER A.
	got, err := DecodeString([]byte{0x80}, Selection{Script: ScriptRussian})
	if err != nil {
		t.Fatal(err)
	}
	if got != "А" {
		t.Errorf("got %q, want %q", got, "А")
	}
}

func TestDecodeString_UnsupportedScript(t *testing.T) {
	_, err := DecodeString([]byte("x"), Selection{Script: ScriptGeorgian})
	if err == nil {
		t.Fatal("expected encoding error for script with no converter")
	}
	var e *rerr.Error
	if !errors.As(err, &e) || e.Kind != rerr.KindEncodingError {
		t.Errorf("err = %v, want encoding_error", err)
	}
}

func TestCountryCode_Valid(t *testing.T) {
	valid := []CountryCode{0, 14, 37, 39, 49, 64, 68, 70, 79, 81, 88, 91, 94, 107}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("CountryCode(%d).Valid() = false, want true", c)
		}
	}
	invalid := []CountryCode{38, 63, 69, 80, 87, 89, 90, 93, 108, 200, 0xffff}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("CountryCode(%d).Valid() = true, want false", c)
		}
	}
}

func TestCountryCode_Script(t *testing.T) {
	tests := []struct {
		country CountryCode
		want    ScriptCode
	}{
		{CountryUSA, ScriptRoman},
		{CountryFrance, ScriptRoman},
		{CountryJapan, ScriptJapanese},
		{CountryRussia, ScriptRussian},
		{CountryTaiwan, ScriptChineseTraditional},
		{CountryIsrael, ScriptHebrew},
	}
	for _, tt := range tests {
		if got := tt.country.Script(); got != tt.want {
			t.Errorf("CountryCode(%d).Script() = %v, want %v", tt.country, got, tt.want)
		}
	}
}

func TestActiveSelection(t *testing.T) {
	defer SetActive(RomanSelection())

	if Active() != RomanSelection() {
		t.Fatal("default active selection should be Roman")
	}
	SetActive(Selection{Script: ScriptJapanese})
	if Active().Script != ScriptJapanese {
		t.Error("SetActive should replace the process-wide selection")
	}
}
