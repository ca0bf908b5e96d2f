package mactext

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/cinegraph/rsrc-engine/errors"
)

// ScriptCode identifies a classic script system.
type ScriptCode uint8

const (
	ScriptRoman ScriptCode = iota
	ScriptJapanese
	ScriptChineseTraditional
	ScriptKorean
	ScriptArabic
	ScriptHebrew
	ScriptGreek
	ScriptRussian
	ScriptRightLeftSymbols
	ScriptDevanagari
	ScriptGurmukhi
	ScriptOriya
	ScriptBengali
	ScriptTamil
	ScriptTelugu
	ScriptKannada
	ScriptMalayalam
	ScriptSinhalese
	ScriptBurmese
	ScriptCambodian
	ScriptThai
	ScriptLaotian
	ScriptGeorgian
	ScriptArmenian
	ScriptChineseSimplified
	ScriptTibetan
	ScriptMongolian
	ScriptEthiopian
	ScriptNonCyrillicSlavic
	ScriptVietnamese
	ScriptSindhi
	ScriptUninterpretedSymbols
)

func (s ScriptCode) String() string {
	switch s {
	case ScriptRoman:
		return "roman"
	case ScriptJapanese:
		return "japanese"
	case ScriptRussian:
		return "russian"
	case ScriptChineseTraditional:
		return "chinese-traditional"
	case ScriptChineseSimplified:
		return "chinese-simplified"
	case ScriptKorean:
		return "korean"
	default:
		return "script-" + string(rune('0'+s/10)) + string(rune('0'+s%10))
	}
}

// Selection is an explicit encoding choice, carried by every string-decoding
// call instead of a hidden global lookup.
type Selection struct {
	Script ScriptCode
}

// RomanSelection is the default selection used when no platform or document
// hint is available.
func RomanSelection() Selection {
	return Selection{Script: ScriptRoman}
}

// encoding returns the x/text encoding backing the selection, or nil when no
// converter is registered for the script.
func (s Selection) encoding() encoding.Encoding {
	switch s.Script {
	case ScriptRoman:
		return charmap.Macintosh
	case ScriptRussian:
		return charmap.MacintoshCyrillic
	case ScriptJapanese:
		// The Mac Japanese script system is a Shift JIS superset; the
		// plain Shift JIS tables cover all text observed in documents.
		return japanese.ShiftJIS
	default:
		return nil
	}
}

// DecodeString converts a legacy byte string to native text using the given
// selection. A script with no registered converter fails with an encoding
// error, as does a byte sequence invalid for the converter.
func DecodeString(b []byte, sel Selection) (string, error) {
	enc := sel.encoding()
	if enc == nil {
		return "", errors.EncodingError("no decoder for script "+sel.Script.String(), nil)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.EncodingError("byte sequence invalid for script "+sel.Script.String(), err)
	}
	return string(out), nil
}
