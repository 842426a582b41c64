package entity

import (
	"strings"
	"time"
)

type SiteSettings struct {
	SiteName     string    `json:"site_name"`
	ContactEmail string    `json:"contact_email"`
	SupportPhone string    `json:"support_phone"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FooterContact struct {
	ID          string    `json:"id"`
	HeadingText string    `json:"heading_text"`
	Email       string    `json:"email"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SocialLink struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	IconName  string    `json:"icon_name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SocialLink) Validate() error {
	s.Platform = strings.TrimSpace(s.Platform)
	s.URL = strings.TrimSpace(s.URL)
	if s.Platform == "" || s.URL == "" {
		return NewValidationError("platform and url are required")
	}
	if s.IconName == "" {
		s.IconName = s.Platform
	}
	return nil
}

// SiteFooter is everything the public footer renders.
type SiteFooter struct {
	Settings SiteSettings   `json:"settings"`
	Contact  *FooterContact `json:"contact,omitempty"`
	Social   []SocialLink   `json:"social"`
}
