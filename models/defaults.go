package models

// DefaultModelName is the model selected by `config init`.
const DefaultModelName = "gemini-2.5-pro-exp-03-25"

// KnownModels are the model choices surfaced by `config show`. Any model
// name whose prefix matches a supported provider is accepted at load time.
var KnownModels = []string{
	"gemini-2.5-pro-exp-03-25",
	"gpt-4.1",
	"claude-3-7-sonnet-20250219",
}

const defaultInternalLinks = `https://workstream.us/product/automated-hiring: Workstream's Automated Hiring Platform
https://workstream.us/product/text-to-apply: Text-to-Apply Feature by Workstream
`

const defaultExternalLinks = `https://www.bls.gov/ooh/: Bureau of Labor Statistics Occupational Outlook Handbook
https://www.shrm.org/resourcesandtools/tools-and-samples/hr-qa: SHRM HR Q&A
`

const defaultBrandGuidelines = "Workstream Brand Voice: Professional yet friendly, practical, authoritative."

const defaultSEOSummary = "SEO Best Practices: Natural keyword integration, user intent focus, clear structure."

// defaultPrompts are the per-field instruction templates shipped with
// `config init`. Operators edit these; the bracketed placeholders are
// substituted by pkg/prompt before each call.
var defaultPrompts = map[string]string{
	FieldPageTitle: `
Task: Generate a Page Title for an article on Workstream's website.
Topic (from CSV/Input): [TOPIC_INPUT]
Primary Keyword (from CSV/Input): [PRIMARY_KEYWORD]
Contextual Information Provided Separately: Workstream Brand Guidelines, SEO Best Practices Summary
Constraints: Max 60 chars. Compelling, SEO-friendly. Include [PRIMARY_KEYWORD].
Output Instructions: Output ONLY the Page Title. No extra text/quotes.
`,
	FieldMetaDescription: `
Task: Generate a Meta Description for an article on Workstream's website.
Topic (from CSV/Input): [TOPIC_INPUT]
Primary Keyword (from CSV/Input): [PRIMARY_KEYWORD]
Secondary Keywords (from CSV/Input, comma-separated): [SECONDARY_KEYWORDS_LIST]
Contextual Information Provided Separately: Workstream Brand Guidelines, SEO Best Practices Summary
Constraints: 140-160 chars. Engaging. Include [PRIMARY_KEYWORD] & ideally a [SECONDARY_KEYWORDS_LIST] keyword. CTA.
Output Instructions: Output ONLY the Meta Description. No extra text/quotes.
`,
	FieldH1Tag: `
Task: Generate an H1 Tag for an article on Workstream's website.
Topic (from CSV/Input): [TOPIC_INPUT]
Primary Keyword (from CSV/Input): [PRIMARY_KEYWORD]
Contextual Information Provided Separately: Workstream Brand Guidelines, SEO Best Practices Summary
Constraints: Max 100 chars (aim 60-70). Clear, user-focused, reflect [PRIMARY_KEYWORD]/[TOPIC_INPUT].
Output Instructions: Output ONLY the H1 Tag. No extra text/quotes.
`,
	FieldSubtitle: `
Task: Generate a Subtitle (lead paragraph/dek) for an article on Workstream's website.
Topic (from CSV/Input): [TOPIC_INPUT]
Contextual Information Provided Separately: Workstream Brand Guidelines
Constraints: Max 200 chars. Value-proposition focused for [TOPIC_INPUT].
Output Instructions: CRITICAL: Wrap entire output in a SINGLE <p class="lead"> tag. Example: <p class="lead">Subtitle here.</p> NO MARKDOWN FENCES. No other text/labels.
`,
	FieldAltText: `
Task: Generate Alt Text for ONE representative image for an article on Workstream's website.
Article Topic (from CSV/Input): [TOPIC_INPUT]
Primary Keyword (from CSV/Input): [PRIMARY_KEYWORD]
Contextual Information Provided Separately: Workstream Brand Guidelines
Context for Image: Imagine a single, clear, relevant image for an article about [TOPIC_INPUT].
Constraints: 10-15 words ideally (max 125 chars). Descriptive. Include [PRIMARY_KEYWORD] if natural. NO "Image of...".
Output Instructions: Output ONLY the Alt Text. No extra text/quotes/labels.
`,
	FieldMainTextHTML: `
Task: Generate the Main Body Text (HTML format) for an SEO-optimized article for Workstream's website.
Topic (from CSV/Input): [TOPIC_INPUT]
Primary Keyword (from CSV/Input): [PRIMARY_KEYWORD]
Secondary Keywords (from CSV/Input, comma-separated list): [SECONDARY_KEYWORDS_LIST]
Contextual Information Provided Separately: Workstream Brand Guidelines, SEO Best Practices Summary, Approved Internal URLs List, Approved External URLs List
Link Inclusion Targets (numbers): Internal Links: [TARGET_NUMBER_INTERNAL_LINKS], External Links: [TARGET_NUMBER_EXTERNAL_LINKS]
---
**Instructions & Constraints (Strictly Follow):**
1.  Content Focus: Comprehensive, high-quality article on [TOPIC_INPUT] for Workstream's audience.
2.  Word Count: Target 700-1100 words.
3.  Tone & Style: Adhere to Workstream Brand Guidelines.
4.  Keyword Integration: Naturally integrate [PRIMARY_KEYWORD] and [SECONDARY_KEYWORDS_LIST]. AVOID STUFFING.
5.  HTML Structure: Use ONLY <p>, <h2>, <h3>, <ul>, <li>, <strong>, <em>, <a href="URL">Anchor</a>. Structure: Intro, 2-4 H2 sections (with H3s/lists), Conclusion.
6.  Internal Links: Include [TARGET_NUMBER_INTERNAL_LINKS]. CRITICAL: ONLY use URLs from "Approved Internal URLs List". Anchor text natural, descriptive (3-7 words), relevant.
7.  External Links: Aim to include [TARGET_NUMBER_EXTERNAL_LINKS] external links if the target is greater than 0.
    CRITICAL: Prioritize using URLs from the "Approved External URLs List" provided.
    ALL external links MUST add significant, direct value to the reader. Absolutely NO links to competitor websites.
8.  Quality & Accuracy: Factually accurate, current, helpful. No fabricated info. Original.
Output Instructions: Output ONLY raw HTML for article body. NO <html>, <head>, <body> tags. NO MARKDOWN FENCES. No other text/labels/preambles.
`,
}

// DefaultConfig returns the configuration written by `config init`.
func DefaultConfig() *Config {
	prompts := make(map[string]string, len(defaultPrompts))
	for k, v := range defaultPrompts {
		prompts[k] = v
	}
	return &Config{
		ModelName:             DefaultModelName,
		ApprovedInternalLinks: defaultInternalLinks,
		ApprovedExternalLinks: defaultExternalLinks,
		BrandGuidelines:       defaultBrandGuidelines,
		SEOSummary:            defaultSEOSummary,
		TargetInternalLinks:   2,
		TargetExternalLinks:   1,
		Temperature:           0.6,
		Prompts:               prompts,
		Topics: []TopicRow{
			{
				TopicInput:        "how to hire baristas",
				PrimaryKeyword:    "hire baristas",
				SecondaryKeywords: "barista hiring process, qualities of a good barista, interview questions for baristas",
			},
			{
				TopicInput:        "how to hire line cooks",
				PrimaryKeyword:    "hire line cooks",
				SecondaryKeywords: "line cook job duties, kitchen staffing, culinary team building",
			},
		},
	}
}
