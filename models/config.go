// Package models defines data structures for configuration and generation output.
package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// TopicRow is one unit of content to generate (one target article).
// Identity is positional; duplicates are permitted.
type TopicRow struct {
	TopicInput        string `json:"topic_input"`
	PrimaryKeyword    string `json:"primary_keyword"`
	SecondaryKeywords string `json:"secondary_keywords"`
}

// Config is the full snapshot of a generation setup: model choice, link
// lists, brand/SEO context, prompt templates and the topic table. It is
// owned by the operator; load replaces it wholesale, save serializes it
// wholesale. There are no partial merge semantics.
type Config struct {
	ModelName             string            `json:"model_name"`
	ApprovedInternalLinks string            `json:"approved_internal_links"`
	ApprovedExternalLinks string            `json:"approved_external_links"`
	BrandGuidelines       string            `json:"brand_guidelines"`
	SEOSummary            string            `json:"seo_summary"`
	TargetInternalLinks   int               `json:"target_internal_links"`
	TargetExternalLinks   int               `json:"target_external_links"`
	Temperature           float64           `json:"llm_temperature"`
	Prompts               map[string]string `json:"editable_prompts"`
	Topics                []TopicRow        `json:"topics_df_as_list"`
}

// LoadConfig reads a configuration document from disk. Unknown keys in the
// JSON are ignored; the returned value replaces any previously active
// configuration wholesale.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration document to disk as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
