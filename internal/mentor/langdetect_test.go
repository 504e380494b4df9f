package mentor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", LangEnglish},
		{"plain english", "What is the Pythagorean theorem?", LangEnglish},
		{"hindi", "पाइथागोरस प्रमेय क्या है?", LangHindi},
		{"tamil", "பைதகோரஸ் கோட்பாடு என்ன?", LangTamil},
		{"telugu", "పైథాగరస్ సిద్ధాంతం అంటే ఏమిటి?", LangTelugu},
		{"kannada", "ಪೈಥಾಗರಸ್ ಪ್ರಮೇಯ ಎಂದರೇನು?", LangKannada},
		{"bengali", "জল চক্র কী?", LangBengali},
		{"gujarati", "પાણીનું ચક્ર શું છે?", LangGujarati},
		{"malayalam", "ജലചക്രം എന്താണ്?", LangMalayalam},
		{"urdu", "پانی کا چکر کیا ہے؟", LangUrdu},
		{"odia", "ଜଳ ଚକ୍ର କଣ?", LangOdia},
		{"punjabi", "ਪਾਣੀ ਦਾ ਚੱਕਰ ਕੀ ਹੈ?", LangPunjabi},
		{"mixed script resolves to first regional script", "Explain जल चक्र please", LangHindi},
		{"numbers and punctuation", "2 + 2 = 4!", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi", LanguageName(LangHindi))
	assert.Equal(t, "Tamil", LanguageName(LangTamil))
	assert.Equal(t, "English", LanguageName("zz"))
}

func TestCannedReplyMatchesTopics(t *testing.T) {
	tests := []struct {
		name     string
		question string
		lang     string
		contains string
	}{
		{"pythagorean in english", "What is the Pythagorean theorem?", LangEnglish, "a² + b² = c²"},
		{"pythagorean in hindi script", "पाइथागोरस प्रमेय क्या है?", LangHindi, "पाइथागोरस"},
		{"newton", "Explain Newton's laws of motion.", LangEnglish, "F=ma"},
		{"water cycle", "Explain the water cycle.", LangEnglish, "Evaporation"},
		{"exam prep", "How to prepare for board exams?", LangEnglish, "mock tests"},
		{"unsupported language falls back to english", "What is the Pythagorean theorem?", LangOdia, "a² + b² = c²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, CannedReply(tt.question, tt.lang), tt.contains)
		})
	}
}

func TestCannedReplyDefault(t *testing.T) {
	reply := CannedReply("tell me something random", LangEnglish)
	assert.Contains(t, reply, "mathematics, science, English")

	// unknown language code still answers
	assert.NotEmpty(t, CannedReply("random", "zz"))
}

func TestSanitizeQuery(t *testing.T) {
	assert.Equal(t, "photosynthesis", sanitizeQuery("What is photosynthesis"))
	assert.Equal(t, "gravity", sanitizeQuery("  define gravity  "))
	assert.Equal(t, "प्रकाश संश्लेषण", sanitizeQuery("क्या है प्रकाश संश्लेषण"))
	assert.Equal(t, "plain query", sanitizeQuery("plain query"))
}
