package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/mentor"
)

type fakeAnswerer struct {
	answer string
	lang   string
	waited bool
}

func (f *fakeAnswerer) Answer(ctx context.Context, query, lang string) string {
	f.lang = lang
	if f.waited {
		// simulate a slow upstream; honors the service timeout
		select {
		case <-ctx.Done():
			return ""
		case <-time.After(time.Second):
		}
	}
	return f.answer
}

func newMentorService(web WebAnswerer) *MentorService {
	return NewMentorService(&config.Config{MentorTimeout: 50 * time.Millisecond}, web)
}

func TestAskPrefersWebAnswer(t *testing.T) {
	web := &fakeAnswerer{answer: "The Pythagorean theorem relates the sides of a right triangle."}
	svc := newMentorService(web)

	reply := svc.Ask(context.Background(), "What is the Pythagorean theorem?", "")

	assert.Equal(t, MentorSourceWeb, reply.Source)
	assert.Equal(t, web.answer, reply.Answer)
	assert.Equal(t, mentor.LangEnglish, reply.Language)
}

func TestAskFallsBackToCannedReply(t *testing.T) {
	svc := newMentorService(&fakeAnswerer{answer: ""})

	reply := svc.Ask(context.Background(), "What is the Pythagorean theorem?", "")

	assert.Equal(t, MentorSourceTemplate, reply.Source)
	assert.Contains(t, reply.Answer, "a² + b² = c²")
}

func TestAskTimesOutSlowWebAndStillAnswers(t *testing.T) {
	svc := newMentorService(&fakeAnswerer{answer: "too late", waited: true})

	start := time.Now()
	reply := svc.Ask(context.Background(), "Explain the water cycle.", "")

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, MentorSourceTemplate, reply.Source)
	assert.NotEmpty(t, reply.Answer)
}

func TestAskDetectsQuestionLanguage(t *testing.T) {
	web := &fakeAnswerer{answer: "उत्तर"}
	svc := newMentorService(web)

	reply := svc.Ask(context.Background(), "पाइथागोरस प्रमेय क्या है?", "en")

	assert.Equal(t, mentor.LangHindi, reply.Language)
	assert.Equal(t, mentor.LangHindi, web.lang)
}

func TestAskUsesPreferredLanguageForLatinText(t *testing.T) {
	svc := newMentorService(&fakeAnswerer{answer: ""})

	reply := svc.Ask(context.Background(), "What is the Pythagorean theorem?", "hi")

	assert.Equal(t, mentor.LangHindi, reply.Language)
	assert.Contains(t, reply.Answer, "पाइथागोरस")
}

func TestAskEmptyQuestionGetsGuidance(t *testing.T) {
	svc := newMentorService(&fakeAnswerer{answer: "should not be used"})

	reply := svc.Ask(context.Background(), "   ", "")

	assert.Equal(t, MentorSourceTemplate, reply.Source)
	assert.NotEmpty(t, reply.Answer)
}
