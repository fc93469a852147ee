// Package langcheck classifies the language of generated article bodies.
// The result is informational: it lands in the run report so an operator
// notices a prompt that drifted into the wrong language, it never gates a
// run.
package langcheck

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pemistahl/lingua-go"
)

// candidateLanguages keeps the detector small; SEO batches here are
// western-market content.
var candidateLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
}

// Checker wraps a lingua detector. Build once, reuse across a batch: the
// builder loads language models eagerly.
type Checker struct {
	detector lingua.LanguageDetector
}

// NewChecker builds a detector over the candidate language set.
func NewChecker() *Checker {
	return &Checker{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidateLanguages...).
			Build(),
	}
}

// Detect returns the detected language name for an HTML fragment. The
// fragment's tags are stripped first so markup doesn't skew detection.
func (c *Checker) Detect(html string) (string, bool) {
	text := plainText(html)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}

// Confidence returns the detector's confidence that the fragment is in the
// given language (0..1).
func (c *Checker) Confidence(html string, language lingua.Language) float64 {
	return c.detector.ComputeLanguageConfidence(plainText(html), language)
}

func plainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}
