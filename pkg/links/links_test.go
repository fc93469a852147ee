package links

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	raw := `https://workstream.us/product/automated-hiring: Workstream's Automated Hiring Platform
https://www.bls.gov/ooh/: Bureau of Labor Statistics

just a note without a separator
https://example.com/page: Example page
`
	got := ParseList(raw)
	want := []ApprovedLink{
		{URL: "https://workstream.us/product/automated-hiring", Description: "Workstream's Automated Hiring Platform"},
		{URL: "https://www.bls.gov/ooh/", Description: "Bureau of Labor Statistics"},
		{URL: "https://example.com/page", Description: "Example page"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList() = %+v, want %+v", got, want)
	}
}

func TestParseListKeepsDuplicates(t *testing.T) {
	raw := "https://a.com: first\nhttps://a.com: second\n"
	got := ParseList(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].URL != "https://a.com" || got[1].URL != "https://a.com" {
		t.Errorf("duplicate URLs not preserved: %+v", got)
	}
}

func TestParseListEmpty(t *testing.T) {
	if got := ParseList(""); got != nil {
		t.Errorf("ParseList(\"\") = %v, want nil", got)
	}
}

func TestAuditExactMatch(t *testing.T) {
	internal := []ApprovedLink{
		{URL: "https://a.com", Description: "A"},
		{URL: "https://b.com", Description: "B"},
	}
	external := []ApprovedLink{
		{URL: "https://c.org", Description: "C"},
	}
	body := `<p>...see <a href="https://a.com">here</a> for more...</p>`

	mi, me := Audit(body, internal, external)
	if !reflect.DeepEqual(mi, []string{"https://a.com"}) {
		t.Errorf("matchedInternal = %v, want [https://a.com]", mi)
	}
	if me != nil {
		t.Errorf("matchedExternal = %v, want nil", me)
	}
}

func TestAuditSubstringSemantics(t *testing.T) {
	// A body URL with extra path still matches the shorter approved URL.
	internal := []ApprovedLink{{URL: "https://a.com", Description: "A"}}
	body := `<a href="https://a.com/extra">deep page</a>`
	mi, _ := Audit(body, internal, nil)
	if !reflect.DeepEqual(mi, []string{"https://a.com"}) {
		t.Errorf("matchedInternal = %v, want [https://a.com]", mi)
	}
}

func TestAuditPreservesApprovedListOrder(t *testing.T) {
	internal := []ApprovedLink{
		{URL: "https://first.com"},
		{URL: "https://second.com"},
	}
	// Body mentions them in the opposite order.
	body := "https://second.com then https://first.com"
	mi, _ := Audit(body, internal, nil)
	want := []string{"https://first.com", "https://second.com"}
	if !reflect.DeepEqual(mi, want) {
		t.Errorf("matchedInternal = %v, want %v", mi, want)
	}
}

func TestAuditDuplicatesYieldDuplicates(t *testing.T) {
	internal := []ApprovedLink{
		{URL: "https://a.com", Description: "one"},
		{URL: "https://a.com", Description: "two"},
	}
	mi, _ := Audit("link: https://a.com", internal, nil)
	if len(mi) != 2 {
		t.Errorf("len(matchedInternal) = %d, want 2", len(mi))
	}
}

func TestJoined(t *testing.T) {
	got := Joined([]string{"https://a.com", "https://b.com"})
	if got != "https://a.com | https://b.com" {
		t.Errorf("Joined() = %q", got)
	}
	if Joined(nil) != "" {
		t.Errorf("Joined(nil) = %q, want empty", Joined(nil))
	}
}

func TestExtractAnchors(t *testing.T) {
	html := `<p>Intro</p>
<h2>Section</h2>
<p><a href="https://a.com">A</a> and <a href="https://b.com/x">B</a></p>
<p><a>no href</a></p>`
	got, err := ExtractAnchors(html)
	if err != nil {
		t.Fatalf("ExtractAnchors() error = %v", err)
	}
	want := []string{"https://a.com", "https://b.com/x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractAnchors() = %v, want %v", got, want)
	}
}

func TestBuildAnchorReport(t *testing.T) {
	internal := []ApprovedLink{{URL: "https://a.com"}}
	html := `<a href="https://a.com">ok</a> <a href="https://rogue.com">bad</a>`
	report, err := BuildAnchorReport(html, internal, nil)
	if err != nil {
		t.Fatalf("BuildAnchorReport() error = %v", err)
	}
	if len(report.Anchors) != 2 {
		t.Errorf("len(Anchors) = %d, want 2", len(report.Anchors))
	}
	if !reflect.DeepEqual(report.Unapproved, []string{"https://rogue.com"}) {
		t.Errorf("Unapproved = %v, want [https://rogue.com]", report.Unapproved)
	}
}
