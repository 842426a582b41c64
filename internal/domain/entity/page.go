package entity

import (
	"strings"
	"time"
)

// PageSEO holds the metadata and headings of one public page.
type PageSEO struct {
	ID              string    `json:"id"`
	PageName        string    `json:"page_name"`
	PageSlug        string    `json:"page_slug"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	MetaKeywords    string    `json:"meta_keywords,omitempty"`
	H1Title         string    `json:"h1_title,omitempty"`
	PageHeading     string    `json:"page_heading,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *PageSEO) Validate() error {
	p.PageName = strings.TrimSpace(p.PageName)
	p.PageSlug = strings.TrimSpace(p.PageSlug)
	if p.PageName == "" || p.PageSlug == "" {
		return NewValidationError("page name and slug are required")
	}
	return nil
}
