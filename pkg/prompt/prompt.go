// Package prompt resolves placeholder tokens in operator-edited prompt
// templates. The token set is closed: anything outside it (including
// misspelled placeholders) passes through verbatim, so a template edit can
// never break a run.
package prompt

import (
	"strconv"
	"strings"

	"github.com/bastianw/seo-content-engine/models"
)

// Placeholder tokens recognized by Resolve.
const (
	TokenTopicInput          = "[TOPIC_INPUT]"
	TokenPrimaryKeyword      = "[PRIMARY_KEYWORD]"
	TokenSecondaryKeywords   = "[SECONDARY_KEYWORDS_LIST]"
	TokenBrandGuidelines     = "[WORKSTREAM_BRAND_GUIDELINES]"
	TokenSEOSummary          = "[SEO_BEST_PRACTICES_SUMMARY]"
	TokenInternalLinksText   = "[APPROVED_INTERNAL_LINKS_TEXT]"
	TokenExternalLinksText   = "[APPROVED_EXTERNAL_LINKS_TEXT]"
	TokenTargetInternalLinks = "[TARGET_NUMBER_INTERNAL_LINKS]"
	TokenTargetExternalLinks = "[TARGET_NUMBER_EXTERNAL_LINKS]"
)

// Tokens returns the closed placeholder set, in substitution order.
func Tokens() []string {
	return []string{
		TokenTopicInput,
		TokenPrimaryKeyword,
		TokenSecondaryKeywords,
		TokenBrandGuidelines,
		TokenSEOSummary,
		TokenInternalLinksText,
		TokenExternalLinksText,
		TokenTargetInternalLinks,
		TokenTargetExternalLinks,
	}
}

// Context maps placeholder tokens to their replacement text for one
// (topic, field) call. Ephemeral: rebuilt per call, never persisted.
type Context map[string]string

// BuildContext derives the substitution context for one topic row from the
// active configuration. Secondary keywords stay a raw comma-separated
// string; link lists are injected as raw text, descriptions included.
func BuildContext(cfg *models.Config, topic models.TopicRow) Context {
	return Context{
		TokenTopicInput:          topic.TopicInput,
		TokenPrimaryKeyword:      topic.PrimaryKeyword,
		TokenSecondaryKeywords:   topic.SecondaryKeywords,
		TokenBrandGuidelines:     cfg.BrandGuidelines,
		TokenSEOSummary:          cfg.SEOSummary,
		TokenInternalLinksText:   cfg.ApprovedInternalLinks,
		TokenExternalLinksText:   cfg.ApprovedExternalLinks,
		TokenTargetInternalLinks: strconv.Itoa(cfg.TargetInternalLinks),
		TokenTargetExternalLinks: strconv.Itoa(cfg.TargetExternalLinks),
	}
}

// Resolve replaces every occurrence of each recognized token with its
// context value (empty string when the context has no entry). The
// substitution is a single pass: replacement values are never re-scanned
// for tokens, and unrecognized bracketed text is left untouched.
func Resolve(template string, ctx Context) string {
	pairs := make([]string, 0, len(tokenSet)*2)
	for _, tok := range Tokens() {
		pairs = append(pairs, tok, ctx[tok])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

var tokenSet = func() map[string]struct{} {
	s := make(map[string]struct{})
	for _, tok := range Tokens() {
		s[tok] = struct{}{}
	}
	return s
}()

// IsToken reports whether s is a member of the recognized placeholder set.
func IsToken(s string) bool {
	_, ok := tokenSet[s]
	return ok
}
