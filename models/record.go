package models

// Generated field names, in the fixed order the orchestrator processes them.
const (
	FieldPageTitle       = "page_title"
	FieldMetaDescription = "meta_description"
	FieldH1Tag           = "h1_tag"
	FieldSubtitle        = "subtitle"
	FieldAltText         = "alt_text"
	FieldMainTextHTML    = "main_text_html"
)

// GeneratedFields lists every field a batch run produces, in generation order.
var GeneratedFields = []string{
	FieldPageTitle,
	FieldMetaDescription,
	FieldH1Tag,
	FieldSubtitle,
	FieldAltText,
	FieldMainTextHTML,
}

// OutputColumns is the fixed column order of the exported results CSV.
var OutputColumns = []string{
	"topic_input", "primary_keyword", "secondary_keywords",
	FieldPageTitle, FieldMetaDescription, FieldH1Tag,
	FieldSubtitle, FieldAltText, FieldMainTextHTML,
	"found_internal_links_in_html", "found_external_links_in_html",
}

// OutputRecord is one row of the final exported table, one per TopicRow.
// Generation failures are stored as error-marker strings in the affected
// field; the record is always complete in shape.
type OutputRecord struct {
	TopicInput        string `json:"topic_input"`
	PrimaryKeyword    string `json:"primary_keyword"`
	SecondaryKeywords string `json:"secondary_keywords"`

	PageTitle       string `json:"page_title"`
	MetaDescription string `json:"meta_description"`
	H1Tag           string `json:"h1_tag"`
	Subtitle        string `json:"subtitle"`
	AltText         string `json:"alt_text"`
	MainTextHTML    string `json:"main_text_html"`

	// Pipe-joined approved URLs found in MainTextHTML, approved-list order.
	FoundInternalLinks string `json:"found_internal_links_in_html"`
	FoundExternalLinks string `json:"found_external_links_in_html"`
}

// SetField stores a generated value under its field name.
func (r *OutputRecord) SetField(name, value string) {
	switch name {
	case FieldPageTitle:
		r.PageTitle = value
	case FieldMetaDescription:
		r.MetaDescription = value
	case FieldH1Tag:
		r.H1Tag = value
	case FieldSubtitle:
		r.Subtitle = value
	case FieldAltText:
		r.AltText = value
	case FieldMainTextHTML:
		r.MainTextHTML = value
	}
}

// Field returns the generated value stored under a field name.
func (r *OutputRecord) Field(name string) string {
	switch name {
	case FieldPageTitle:
		return r.PageTitle
	case FieldMetaDescription:
		return r.MetaDescription
	case FieldH1Tag:
		return r.H1Tag
	case FieldSubtitle:
		return r.Subtitle
	case FieldAltText:
		return r.AltText
	case FieldMainTextHTML:
		return r.MainTextHTML
	}
	return ""
}

// Row returns the record's values in OutputColumns order.
func (r *OutputRecord) Row() []string {
	return []string{
		r.TopicInput, r.PrimaryKeyword, r.SecondaryKeywords,
		r.PageTitle, r.MetaDescription, r.H1Tag,
		r.Subtitle, r.AltText, r.MainTextHTML,
		r.FoundInternalLinks, r.FoundExternalLinks,
	}
}
