package mentor

import "strings"

// topic groups the keyword triggers and per-language replies for one
// canned answer. Triggers include the regional-script phrasings the
// quick-question buttons send.
type topic struct {
	triggers []string
	replies  map[string]string
}

var topics = []topic{
	{
		triggers: []string{"pythagorean", "pythagoras", "पाइथागोरस", "పైథాగరస్", "ಪೈಥಾಗರಸ್", "பைதகோரஸ்"},
		replies: map[string]string{
			LangEnglish: "The Pythagorean theorem states that in a right-angled triangle, the square of the hypotenuse equals the sum of the squares of the other two sides: a² + b² = c². This is fundamental in geometry and helps solve many triangle problems.",
			LangHindi:   "पाइथागोरस प्रमेय कहता है कि एक समकोण त्रिभुज में, कर्ण का वर्ग अन्य दो भुजाओं के वर्गों के योग के बराबर होता है: a² + b² = c²।",
			LangTamil:   "பைதகோரஸ் கோட்பாடு: ஒரு நேர்கோண முக்கோணத்தில், எதிர்கோணத்தின் சதுரம் மற்ற இரண்டு பக்கங்களின் சதுரங்களின் கூட்டுத்தொகைக்கு சமம்: a² + b² = c².",
		},
	},
	{
		triggers: []string{"algebra", "बीजगणित", "బీజగణితం", "ಬೀಜಗಣಿತ"},
		replies: map[string]string{
			LangEnglish: "Algebra is the branch of mathematics that uses symbols and letters to represent numbers and quantities in equations. It helps solve problems involving unknown values and is essential for advanced mathematics.",
			LangHindi:   "बीजगणित गणित की वह शाखा है जो समीकरणों में संख्याओं और मात्राओं को दर्शाने के लिए प्रतीकों और अक्षरों का उपयोग करती है।",
		},
	},
	{
		triggers: []string{"geometry", "ज्यामिति", "జ్యామితి", "ಜ್ಯಾಮಿತಿ", "வடிவவியல்"},
		replies: map[string]string{
			LangEnglish: "Geometry is the study of shapes, sizes, positions, and properties of space. It includes points, lines, angles, surfaces, and solids.",
			LangHindi:   "ज्यामिति आकृतियों, आकारों, स्थितियों और स्थान के गुणों का अध्ययन है।",
		},
	},
	{
		triggers: []string{"photosynthesis", "प्रकाश संश्लेषण", "ప్రకాశ సంశ్లేషణ", "ஒளிச்சேர்க்கை"},
		replies: map[string]string{
			LangEnglish: "Photosynthesis is the process by which green plants use sunlight, carbon dioxide, and water to produce glucose and oxygen: 6CO₂ + 6H₂O + light energy → C₆H₁₂O₆ + 6O₂. This process is essential for life on Earth.",
			LangHindi:   "प्रकाश संश्लेषण वह प्रक्रिया है जिसके द्वारा हरे पौधे सूर्य के प्रकाश, कार्बन डाइऑक्साइड और पानी का उपयोग करके ग्लूकोज और ऑक्सीजन उत्पादित करते हैं।",
			LangTamil:   "ஒளிச்சேர்க்கை என்பது பச்சை தாவரங்கள் சூரியஒளி, கார்பன் டைஆக்சைடு மற்றும் தண்ணீரைப் பயன்படுத்தி குளுக்கோஸ் மற்றும் ஆக்ஸிஜன் உருவாக்கும் செயல்முறை.",
		},
	},
	{
		triggers: []string{"newton", "न्यूटन", "న్యూటన్", "ನ್ಯೂಟನ್", "நியூட்டன்"},
		replies: map[string]string{
			LangEnglish: "Newton's three laws of motion are: 1) An object at rest stays at rest unless acted upon by a force. 2) Force equals mass times acceleration (F=ma). 3) For every action, there is an equal and opposite reaction.",
			LangHindi:   "न्यूटन के गति के तीन नियम हैं: 1) कोई वस्तु विरामावस्था में तब तक रहती है जब तक उस पर कोई बल न लगे। 2) बल द्रव्यमान गुणा त्वरण के बराबर होता है (F=ma)। 3) प्रत्येक क्रिया के लिए एक समान और विपरीत प्रतिक्रिया होती है।",
		},
	},
	{
		triggers: []string{"water cycle", "जल चक्र", "నీటి చక్రం", "நீர் சுழற்சி"},
		replies: map[string]string{
			LangEnglish: "The water cycle consists of four main stages: 1) Evaporation - water turns into vapor, 2) Condensation - vapor forms clouds, 3) Precipitation - water falls as rain or snow, 4) Collection - water gathers in oceans, lakes, and rivers.",
			LangHindi:   "जल चक्र में चार मुख्य चरण होते हैं: वाष्पीकरण, संघनन, वर्षा और संग्रह।",
		},
	},
	{
		triggers: []string{"grammar", "व्याकरण", "వ్యాకరణం", "ವ್ಯಾಕರಣ", "இலக்கணம்"},
		replies: map[string]string{
			LangEnglish: "English grammar includes parts of speech (nouns, verbs, adjectives), tenses (past, present, future), sentence structure, and punctuation. Practice regularly and read good books to improve your grammar skills.",
			LangHindi:   "अंग्रेज़ी व्याकरण में शब्द भेद, काल, वाक्य संरचना और विराम चिह्न शामिल हैं। नियमित अभ्यास करें और अच्छी किताबें पढ़ें।",
		},
	},
	{
		triggers: []string{"writing", "लेखन", "రాయడం", "எழுத்து"},
		replies: map[string]string{
			LangEnglish: "To improve English writing: 1) Read regularly to expand vocabulary, 2) Practice writing daily, 3) Learn grammar rules, 4) Use varied sentence structures, 5) Proofread your work, 6) Get feedback from others.",
			LangHindi:   "अंग्रेज़ी लेखन में सुधार के लिए: नियमित पढ़ें, प्रतिदिन लेखन का अभ्यास करें, व्याकरण नियम सीखें, और दूसरों से प्रतिक्रिया लें।",
		},
	},
	{
		triggers: []string{"study", "अध्ययन", "అభ్యాసం", "படிப்பு"},
		replies: map[string]string{
			LangEnglish: "Effective study tips: 1) Create a study schedule and stick to it, 2) Find a quiet study space, 3) Take regular breaks (25-30 minutes study, 5-10 minutes break), 4) Use active recall and teach others, 5) Practice with past papers, 6) Get adequate sleep.",
			LangHindi:   "प्रभावी अध्ययन सुझाव: अध्ययन समय सारणी बनाएं, शांत स्थान खोजें, नियमित ब्रेक लें, सक्रिय अध्ययन तकनीकों का उपयोग करें और पर्याप्त नींद लें।",
		},
	},
	{
		triggers: []string{"exam", "परीक्षा", "పరీక్ష", "தேர்வு"},
		replies: map[string]string{
			LangEnglish: "Exam preparation strategies: 1) Start early with a study plan, 2) Review all topics systematically, 3) Practice past papers, 4) Make summary notes and flashcards, 5) Take timed mock tests, 6) Focus on weak areas, 7) Stay calm and confident on exam day.",
			LangHindi:   "परीक्षा तैयारी रणनीतियां: जल्दी शुरू करें, सभी विषयों की व्यवस्थित समीक्षा करें, मॉक टेस्ट दें और परीक्षा के दिन शांत रहें।",
		},
	},
	{
		triggers: []string{"motivation", "प्रेरणा", "ప్రేరణ", "உந்துதல்"},
		replies: map[string]string{
			LangEnglish: "Remember: Every expert was once a beginner. Learning is a journey, not a destination. Small consistent efforts lead to big results. Stay positive, stay curious, and keep learning!",
			LangHindi:   "याद रखें: हर विशेषज्ञ कभी एक शुरुआत करने वाला था। छोटे-छोटे निरंतर प्रयास बड़े परिणाम लाते हैं। सकारात्मक रहें और सीखते रहें!",
		},
	},
}

var defaultReplies = map[string]string{
	LangEnglish: "That's an interesting question! I'm here to help you with your studies. Could you be more specific about what you'd like to know? I can help with mathematics, science, English, study techniques, and exam preparation.",
	LangHindi:   "यह एक दिलचस्प सवाल है! मैं आपकी पढ़ाई में मदद करने के लिए यहाँ हूँ। कृपया स्पष्ट करें कि आप क्या जानना चाहते हैं? मैं गणित, विज्ञान, अंग्रेज़ी, अध्ययन तकनीकों और परीक्षा तैयारी में मदद कर सकता हूँ।",
	LangTamil:   "இது ஒரு சுவாரஸ்யமான கேள்வி! உங்கள் படிப்பில் உதவ நான் இருக்கிறேன். நீங்கள் எதைப் பற்றி அறிய விரும்புகிறீர்கள்?",
}

// reply picks a topic's answer in the requested language, falling back
// to English.
func (t topic) reply(lang string) string {
	if answer, ok := t.replies[lang]; ok {
		return answer
	}
	return t.replies[LangEnglish]
}

// CannedReply matches the question against the known topics and returns
// a templated answer in the requested language. It always answers;
// unknown questions get the generic guidance reply.
func CannedReply(question, lang string) string {
	lowered := strings.ToLower(question)
	for _, t := range topics {
		for _, trigger := range t.triggers {
			if strings.Contains(lowered, trigger) {
				return t.reply(lang)
			}
		}
	}
	if answer, ok := defaultReplies[lang]; ok {
		return answer
	}
	return defaultReplies[LangEnglish]
}
