// Package mentor implements the Virtual Mentor: language detection,
// templated multilingual replies, and web-backed answers from Wikipedia
// and DuckDuckGo.
package mentor

// Supported reply languages, ISO 639-1.
const (
	LangEnglish   = "en"
	LangHindi     = "hi"
	LangTamil     = "ta"
	LangTelugu    = "te"
	LangKannada   = "kn"
	LangBengali   = "bn"
	LangGujarati  = "gu"
	LangMalayalam = "ml"
	LangUrdu      = "ur"
	LangOdia      = "or"
	LangPunjabi   = "pa"
)

// scriptRange maps a Unicode block to a language code. Marathi shares
// Devanagari with Hindi and Assamese shares the Bengali block; both
// resolve to the block's primary language.
type scriptRange struct {
	lo, hi rune
	lang   string
}

var scriptRanges = []scriptRange{
	{0x0900, 0x097F, LangHindi},
	{0x0B80, 0x0BFF, LangTamil},
	{0x0C00, 0x0C7F, LangTelugu},
	{0x0C80, 0x0CFF, LangKannada},
	{0x0980, 0x09FF, LangBengali},
	{0x0A80, 0x0AFF, LangGujarati},
	{0x0D00, 0x0D7F, LangMalayalam},
	{0x0600, 0x06FF, LangUrdu},
	{0x0B00, 0x0B7F, LangOdia},
	{0x0A00, 0x0A7F, LangPunjabi},
}

// DetectLanguage scans the text left to right and returns the language
// of the first recognized script block, or English when the text is
// empty or entirely Latin. Mixed-script input resolves to whichever
// regional script appears first.
func DetectLanguage(text string) string {
	for _, r := range text {
		for _, sr := range scriptRanges {
			if r >= sr.lo && r <= sr.hi {
				return sr.lang
			}
		}
	}
	return LangEnglish
}

var languageNames = map[string]string{
	LangEnglish:   "English",
	LangHindi:     "Hindi",
	LangTamil:     "Tamil",
	LangTelugu:    "Telugu",
	LangKannada:   "Kannada",
	LangBengali:   "Bengali",
	LangGujarati:  "Gujarati",
	LangMalayalam: "Malayalam",
	LangUrdu:      "Urdu",
	LangOdia:      "Odia",
	LangPunjabi:   "Punjabi",
}

// LanguageName renders a code as a display name, defaulting to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}
