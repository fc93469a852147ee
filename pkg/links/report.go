package links

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractAnchors returns the href of every anchor in an HTML fragment, in
// document order. Informational only: the audit contract is substring
// matching, this just feeds the human-readable link report.
func ExtractAnchors(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}

// AnchorReport summarizes how a body's anchors relate to the approved lists.
type AnchorReport struct {
	Anchors    []string // every href found in the body
	Unapproved []string // hrefs present in neither approved list
}

// BuildAnchorReport extracts anchors and flags those outside both approved
// lists. List membership here is exact URL equality, not substring.
func BuildAnchorReport(html string, internal, external []ApprovedLink) (AnchorReport, error) {
	anchors, err := ExtractAnchors(html)
	if err != nil {
		return AnchorReport{}, err
	}

	approved := make(map[string]struct{}, len(internal)+len(external))
	for _, l := range internal {
		approved[l.URL] = struct{}{}
	}
	for _, l := range external {
		approved[l.URL] = struct{}{}
	}

	report := AnchorReport{Anchors: anchors}
	for _, href := range anchors {
		if _, ok := approved[href]; !ok {
			report.Unapproved = append(report.Unapproved, href)
		}
	}
	return report, nil
}
