package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/mentor"
)

// WebAnswerer resolves a question against outside sources. "" means no
// answer was found; implementations must never return an error to the
// caller, only silence.
type WebAnswerer interface {
	Answer(ctx context.Context, query, lang string) string
}

// MentorReply is one answer from the virtual mentor.
type MentorReply struct {
	Answer    string    `json:"answer"`
	Language  string    `json:"language"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// Answer sources.
const (
	MentorSourceWeb      = "web"
	MentorSourceTemplate = "template"
)

// MentorService answers student questions: detect the question's
// language, try the web within a bounded timeout, fall back to the
// canned multilingual replies. It always answers something.
type MentorService struct {
	web     WebAnswerer
	timeout time.Duration
	log     zerolog.Logger
}

// NewMentorService creates a new MentorService.
func NewMentorService(cfg *config.Config, web WebAnswerer) *MentorService {
	return &MentorService{
		web:     web,
		timeout: cfg.MentorTimeout,
		log:     logger.Component("mentor_service"),
	}
}

// Ask answers one question. preferredLang is the caller's UI language
// and is only used when the question itself is script-neutral (Latin
// text detects as English).
func (s *MentorService) Ask(ctx context.Context, question, preferredLang string) MentorReply {
	lang := mentor.DetectLanguage(question)
	if lang == mentor.LangEnglish && preferredLang != "" {
		lang = preferredLang
	}

	reply := MentorReply{Language: lang, Timestamp: time.Now()}

	if strings.TrimSpace(question) == "" {
		reply.Answer = mentor.CannedReply(question, lang)
		reply.Source = MentorSourceTemplate
		return reply
	}

	webCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if answer := s.web.Answer(webCtx, question, lang); answer != "" {
		reply.Answer = answer
		reply.Source = MentorSourceWeb
		return reply
	}

	s.log.Debug().Str("lang", lang).Msg("web lookup failed, using canned reply")
	reply.Answer = mentor.CannedReply(question, lang)
	reply.Source = MentorSourceTemplate
	return reply
}
