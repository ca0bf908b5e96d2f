package mactext

// CountryCode is a classic international localization code, found in version
// resources. The table has gaps; Valid reports membership.
type CountryCode uint16

const (
	CountryUSA              CountryCode = 0
	CountryFrance           CountryCode = 1
	CountryBritain          CountryCode = 2
	CountryGermany          CountryCode = 3
	CountryItaly            CountryCode = 4
	CountryNetherlands      CountryCode = 5
	CountryFlemish          CountryCode = 6
	CountrySweden           CountryCode = 7
	CountrySpain            CountryCode = 8
	CountryDenmark          CountryCode = 9
	CountryPortugal         CountryCode = 10
	CountryFrCanada         CountryCode = 11
	CountryNorway           CountryCode = 12
	CountryIsrael           CountryCode = 13
	CountryJapan            CountryCode = 14
	CountryAustralia        CountryCode = 15
	CountryArabic           CountryCode = 16
	CountryFinland          CountryCode = 17
	CountryFrSwiss          CountryCode = 18
	CountryGrSwiss          CountryCode = 19
	CountryGreece           CountryCode = 20
	CountryIceland          CountryCode = 21
	CountryMalta            CountryCode = 22
	CountryCyprus           CountryCode = 23
	CountryTurkey           CountryCode = 24
	CountryYugoCroatian     CountryCode = 25
	CountryIndiaHindi       CountryCode = 33
	CountryPakistanUrdu     CountryCode = 34
	CountryItalianSwiss     CountryCode = 36
	CountryInternational    CountryCode = 37
	CountryRomania          CountryCode = 39
	CountryGreecePoly       CountryCode = 40
	CountryLithuania        CountryCode = 41
	CountryPoland           CountryCode = 42
	CountryHungary          CountryCode = 43
	CountryEstonia          CountryCode = 44
	CountryLatvia           CountryCode = 45
	CountrySami             CountryCode = 46
	CountryFaroeIsl         CountryCode = 47
	CountryIran             CountryCode = 48
	CountryRussia           CountryCode = 49
	CountryIreland          CountryCode = 50
	CountryKorea            CountryCode = 51
	CountryChina            CountryCode = 52
	CountryTaiwan           CountryCode = 53
	CountryThailand         CountryCode = 54
	CountryCzech            CountryCode = 56
	CountrySlovak           CountryCode = 57
	CountryBengali          CountryCode = 60
	CountryByeloRussian     CountryCode = 61
	CountryUkraine          CountryCode = 62
	CountrySerbian          CountryCode = 65
	CountrySlovenian        CountryCode = 66
	CountryMacedonian       CountryCode = 67
	CountryCroatia          CountryCode = 68
	CountryGermanReformed   CountryCode = 70
	CountryBrazil           CountryCode = 71
	CountryBulgaria         CountryCode = 72
	CountryCatalonia        CountryCode = 73
	CountryMultilingual     CountryCode = 74
	CountryScottishGaelic   CountryCode = 75
	CountryManxGaelic       CountryCode = 76
	CountryBreton           CountryCode = 77
	CountryNunavut          CountryCode = 78
	CountryWelsh            CountryCode = 79
	CountryIrishGaelicDotted CountryCode = 81
	CountryEngCanada        CountryCode = 82
	CountryBhutan           CountryCode = 83
	CountryArmenian         CountryCode = 84
	CountryGeorgian         CountryCode = 85
	CountrySpLatinAmerica   CountryCode = 86
	CountryTonga            CountryCode = 88
	CountryFrenchUniversal  CountryCode = 91
	CountryAustria          CountryCode = 92
	CountryGujarati         CountryCode = 94
	CountryPunjabi          CountryCode = 95
	CountryIndiaUrdu        CountryCode = 96
	CountryVietnam          CountryCode = 97
	CountryFrBelgium        CountryCode = 98
	CountryUzbek            CountryCode = 99
	CountrySingapore        CountryCode = 100
	CountryNynorsk          CountryCode = 101
	CountryAfrikaans        CountryCode = 102
	CountryEsperanto        CountryCode = 103
	CountryMarathi          CountryCode = 104
	CountryTibetan          CountryCode = 105
	CountryNepal            CountryCode = 106
	CountryGreenland        CountryCode = 107
)

// Valid reports whether the code is a member of the classic table. The table
// runs 0-107 with unassigned holes at 38, 63, 69, 80, 87, 89-90 and 93.
func (c CountryCode) Valid() bool {
	switch {
	case c <= 37:
		return true
	case c >= 39 && c <= 62:
		return true
	case c >= 64 && c <= 68:
		return true
	case c >= 70 && c <= 79:
		return true
	case c >= 81 && c <= 86:
		return true
	case c == 88:
		return true
	case c == 91 || c == 92:
		return true
	case c >= 94 && c <= 107:
		return true
	default:
		return false
	}
}

// Script maps a country code to the script system used for its text.
// Country codes appear in every version resource, while script codes are
// generally not stored in the fork, so this matrix drives encoding selection
// when a document supplies only a country.
func (c CountryCode) Script() ScriptCode {
	switch c {
	case CountryJapan:
		return ScriptJapanese
	case CountryRussia, CountryByeloRussian, CountryUkraine, CountryBulgaria,
		CountrySerbian, CountryMacedonian:
		return ScriptRussian
	case CountryChina:
		return ScriptChineseSimplified
	case CountryTaiwan:
		return ScriptChineseTraditional
	case CountryKorea:
		return ScriptKorean
	case CountryArabic, CountryIran:
		return ScriptArabic
	case CountryIsrael:
		return ScriptHebrew
	case CountryGreece, CountryGreecePoly:
		return ScriptGreek
	case CountryThailand:
		return ScriptThai
	default:
		return ScriptRoman
	}
}
