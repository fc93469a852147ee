package prompt

import (
	"strings"
	"testing"

	"github.com/bastianw/seo-content-engine/models"
)

func TestResolveReplacesAllOccurrences(t *testing.T) {
	ctx := Context{
		TokenTopicInput:     "hiring baristas",
		TokenPrimaryKeyword: "hire baristas",
	}
	tpl := "Title about [TOPIC_INPUT]. Repeat: [TOPIC_INPUT]. Keyword: [PRIMARY_KEYWORD]."
	got := Resolve(tpl, ctx)
	want := "Title about hiring baristas. Repeat: hiring baristas. Keyword: hire baristas."
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveMissingContextValueBecomesEmpty(t *testing.T) {
	got := Resolve("x[PRIMARY_KEYWORD]y", Context{})
	if got != "xy" {
		t.Errorf("Resolve() = %q, want %q", got, "xy")
	}
}

func TestResolveLeavesUnknownTokensVerbatim(t *testing.T) {
	got := Resolve("Hello [UNKNOWN] and [TYPO_TOKEN]", Context{TokenTopicInput: "t"})
	want := "Hello [UNKNOWN] and [TYPO_TOKEN]"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveNoNestedSubstitution(t *testing.T) {
	// A substituted value containing token syntax must not be re-scanned.
	ctx := Context{
		TokenTopicInput:     "see [PRIMARY_KEYWORD]",
		TokenPrimaryKeyword: "oops",
	}
	got := Resolve("[TOPIC_INPUT]", ctx)
	if got != "see [PRIMARY_KEYWORD]" {
		t.Errorf("Resolve() = %q, want %q", got, "see [PRIMARY_KEYWORD]")
	}
}

func TestResolveIdempotent(t *testing.T) {
	ctx := Context{
		TokenTopicInput:        "topic",
		TokenPrimaryKeyword:    "kw",
		TokenSecondaryKeywords: "a, b",
	}
	tpl := "t=[TOPIC_INPUT] k=[PRIMARY_KEYWORD] s=[SECONDARY_KEYWORDS_LIST] u=[UNKNOWN]"
	once := Resolve(tpl, ctx)
	twice := Resolve(once, ctx)
	if once != twice {
		t.Errorf("Resolve not idempotent:\n once: %q\ntwice: %q", once, twice)
	}
}

func TestResolveOutputContainsNoContextTokens(t *testing.T) {
	cfg := models.DefaultConfig()
	topic := cfg.Topics[0]
	ctx := BuildContext(cfg, topic)
	for field, tpl := range cfg.Prompts {
		resolved := Resolve(tpl, ctx)
		for tok := range ctx {
			// Link-list values legitimately contain no tokens, so any
			// remaining token means substitution was skipped.
			if strings.Contains(resolved, tok) {
				t.Errorf("field %s: resolved prompt still contains %s", field, tok)
			}
		}
	}
}

func TestBuildContext(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.TargetInternalLinks = 4
	cfg.TargetExternalLinks = 0
	topic := models.TopicRow{
		TopicInput:        "a",
		PrimaryKeyword:    "b",
		SecondaryKeywords: "c, d",
	}
	ctx := BuildContext(cfg, topic)

	cases := []struct {
		token string
		want  string
	}{
		{TokenTopicInput, "a"},
		{TokenPrimaryKeyword, "b"},
		{TokenSecondaryKeywords, "c, d"},
		{TokenBrandGuidelines, cfg.BrandGuidelines},
		{TokenSEOSummary, cfg.SEOSummary},
		{TokenInternalLinksText, cfg.ApprovedInternalLinks},
		{TokenExternalLinksText, cfg.ApprovedExternalLinks},
		{TokenTargetInternalLinks, "4"},
		{TokenTargetExternalLinks, "0"},
	}
	for _, c := range cases {
		if got := ctx[c.token]; got != c.want {
			t.Errorf("ctx[%s] = %q, want %q", c.token, got, c.want)
		}
	}
	if len(ctx) != len(Tokens()) {
		t.Errorf("context has %d entries, want %d", len(ctx), len(Tokens()))
	}
}

func TestIsToken(t *testing.T) {
	if !IsToken(TokenTopicInput) {
		t.Error("IsToken([TOPIC_INPUT]) = false, want true")
	}
	if IsToken("[NOT_A_TOKEN]") {
		t.Error("IsToken([NOT_A_TOKEN]) = true, want false")
	}
}
