package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartedurural/smartedu-backend/internal/logger"
)

// WebClient answers questions from public, keyless endpoints: Wikipedia
// first, DuckDuckGo's instant-answer API second. Every lookup returns
// "" on failure so callers can fall back to canned replies; network
// errors are never surfaced. Deadlines come from the caller's context.
type WebClient struct {
	http *http.Client
	log  zerolog.Logger
}

// NewWebClient creates a web answer client.
func NewWebClient() *WebClient {
	return &WebClient{
		http: &http.Client{},
		log:  logger.Component("mentor_web"),
	}
}

// question prefixes stripped before title lookup, English plus the
// regional phrasings the quick-question buttons produce
var queryPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(definition of|what is|explain|define)\s+`),
	regexp.MustCompile(`^(परिभाषा|क्या है|समझाइए)\s+`),
	regexp.MustCompile(`^(నిర్వచనం|ఏమిటి|వివరించండి)\s+`),
	regexp.MustCompile(`^(ವ್ಯಾಖ್ಯಾನ|ಏನು|ವಿವರಿಸಿ)\s+`),
	regexp.MustCompile(`^(வரையறை|என்ன|விளக்கவும்)\s+`),
}

func sanitizeQuery(q string) string {
	out := strings.TrimSpace(q)
	for _, p := range queryPrefixes {
		out = p.ReplaceAllString(out, "")
	}
	return strings.TrimSpace(out)
}

var twoLetterLang = regexp.MustCompile(`^[a-z]{2}$`)

func normalizeLang(lang string) string {
	lang = strings.ToLower(lang)
	if twoLetterLang.MatchString(lang) {
		return lang
	}
	return LangEnglish
}

// fetchJSON GETs a URL and decodes the body into out. Any transport or
// decode problem is reported as an error; non-2xx is an error too.
func (c *WebClient) fetchJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// restSummary fetches the REST page summary extract for a title.
func (c *WebClient) restSummary(ctx context.Context, title, lang string) string {
	var data struct {
		Extract string `json:"extract"`
	}
	u := fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/page/summary/%s", lang, url.PathEscape(title))
	if err := c.fetchJSON(ctx, u, &data); err != nil {
		return ""
	}
	return data.Extract
}

// searchTitle resolves a free-text query to the best article title via
// the opensearch endpoint. The response is a positional JSON array:
// [query, titles, descriptions, urls].
func (c *WebClient) searchTitle(ctx context.Context, query, lang string) string {
	u := fmt.Sprintf(
		"https://%s.wikipedia.org/w/api.php?action=opensearch&search=%s&limit=1&namespace=0&format=json",
		lang, url.QueryEscape(query),
	)
	var raw []json.RawMessage
	if err := c.fetchJSON(ctx, u, &raw); err != nil || len(raw) < 2 {
		return ""
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil || len(titles) == 0 {
		return ""
	}
	return titles[0]
}

type wikiPagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract   string `json:"extract"`
			Langlinks []struct {
				Title string `json:"*"`
			} `json:"langlinks"`
		} `json:"pages"`
	} `json:"query"`
}

// extract fetches the plaintext intro of an article via the MediaWiki
// extracts API, the fallback when no REST summary exists.
func (c *WebClient) extract(ctx context.Context, title, lang string) string {
	u := fmt.Sprintf(
		"https://%s.wikipedia.org/w/api.php?action=query&prop=extracts&exintro=1&explaintext=1&redirects=1&titles=%s&format=json",
		lang, url.QueryEscape(title),
	)
	var data wikiPagesResponse
	if err := c.fetchJSON(ctx, u, &data); err != nil {
		return ""
	}
	for id, page := range data.Query.Pages {
		if id == "-1" {
			continue
		}
		if page.Extract != "" {
			return page.Extract
		}
	}
	return ""
}

// interlanguageTitle maps an article title from one wiki to another via
// langlinks, bridging queries whose subject only resolves in English.
func (c *WebClient) interlanguageTitle(ctx context.Context, title, sourceLang, targetLang string) string {
	u := fmt.Sprintf(
		"https://%s.wikipedia.org/w/api.php?action=query&prop=langlinks&titles=%s&lllang=%s&format=json",
		sourceLang, url.QueryEscape(title), url.QueryEscape(targetLang),
	)
	var data wikiPagesResponse
	if err := c.fetchJSON(ctx, u, &data); err != nil {
		return ""
	}
	for id, page := range data.Query.Pages {
		if id == "-1" {
			continue
		}
		if len(page.Langlinks) > 0 && page.Langlinks[0].Title != "" {
			return page.Langlinks[0].Title
		}
	}
	return ""
}

// AnswerFromWikipedia tries, in order: a direct REST summary in the
// requested language, an opensearch title lookup plus summary, the
// extracts API, and finally an English-title bridge through
// interlanguage links.
func (c *WebClient) AnswerFromWikipedia(ctx context.Context, query, uiLang string) string {
	lang := normalizeLang(uiLang)
	cleaned := sanitizeQuery(query)
	if cleaned == "" {
		cleaned = query
	}

	if answer := c.restSummary(ctx, cleaned, lang); answer != "" {
		return answer
	}

	title := c.searchTitle(ctx, cleaned, lang)
	if title != "" {
		if answer := c.restSummary(ctx, title, lang); answer != "" {
			return answer
		}
		if answer := c.extract(ctx, title, lang); answer != "" {
			return answer
		}
	}

	enTitle := c.searchTitle(ctx, cleaned, LangEnglish)
	if enTitle == "" {
		return ""
	}
	mapped := c.interlanguageTitle(ctx, enTitle, LangEnglish, lang)
	if mapped == "" {
		return ""
	}
	if answer := c.restSummary(ctx, mapped, lang); answer != "" {
		return answer
	}
	return c.extract(ctx, mapped, lang)
}

// AnswerFromDuckDuckGo queries the instant-answer API.
func (c *WebClient) AnswerFromDuckDuckGo(ctx context.Context, query, uiLang string) string {
	lang := normalizeLang(uiLang)
	u := fmt.Sprintf(
		"https://api.duckduckgo.com/?q=%s&format=json&no_redirect=1&no_html=1&skip_disambig=1&kl=%s-%s",
		url.QueryEscape(query), lang, lang,
	)
	var data struct {
		AbstractText string `json:"AbstractText"`
		Abstract     string `json:"Abstract"`
		Heading      string `json:"Heading"`
	}
	if err := c.fetchJSON(ctx, u, &data); err != nil {
		return ""
	}
	switch {
	case data.AbstractText != "":
		return data.AbstractText
	case data.Abstract != "":
		return data.Abstract
	case data.Heading != "":
		return data.Heading
	default:
		return ""
	}
}

// Answer tries Wikipedia then DuckDuckGo. "" means both failed.
func (c *WebClient) Answer(ctx context.Context, query, uiLang string) string {
	if answer := c.AnswerFromWikipedia(ctx, query, uiLang); answer != "" {
		return answer
	}
	if answer := c.AnswerFromDuckDuckGo(ctx, query, uiLang); answer != "" {
		return answer
	}
	c.log.Debug().Str("query", query).Msg("no web answer found")
	return ""
}
