package entity

import (
	"math"
	"strings"
	"time"
)

type ListingStatus string

const (
	ListingStatusAvailable   ListingStatus = "available"
	ListingStatusNegotiation ListingStatus = "negotiation"
	ListingStatusSold        ListingStatus = "sold"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusAvailable, ListingStatusNegotiation, ListingStatusSold:
		return true
	}
	return false
}

const DefaultCategory = "General"

// Listing is a single domain name offered for sale.
type Listing struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	TLD              string        `json:"tld"`
	Category         string        `json:"category"`
	Price            float64       `json:"price"`
	Status           ListingStatus `json:"status"`
	Featured         bool          `json:"featured"`
	RegistrationDate *time.Time    `json:"registration_date,omitempty"`
	Tagline          string        `json:"tagline,omitempty"`
	Description      string        `json:"description,omitempty"`
	MarketRationale  string        `json:"market_rationale,omitempty"`
	UseCases         []string      `json:"use_cases,omitempty"`
	USPPoints        []string      `json:"usp_points,omitempty"`
	SimilarDomains   []string      `json:"similar_domains,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// NewListing validates the name and fills derived fields for a new listing.
func NewListing(name string, price float64, category string) (*Listing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, NewValidationError("domain name is required")
	}
	price = SanitizePrice(price)
	if price < 0 {
		return nil, NewValidationError("price must not be negative")
	}
	if category = strings.TrimSpace(category); category == "" {
		category = DefaultCategory
	}
	now := time.Now().UTC()
	return &Listing{
		Name:      name,
		TLD:       TLDOf(name),
		Category:  category,
		Price:     price,
		Status:    ListingStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Label returns the part of the name before its first dot.
func (l Listing) Label() string {
	return LabelOf(l.Name)
}

func (l Listing) IsAvailable() bool {
	return l.Status == ListingStatusAvailable
}

// RenewalDate is one year after the registration date, if known.
func (l Listing) RenewalDate() (time.Time, bool) {
	if l.RegistrationDate == nil || l.RegistrationDate.IsZero() {
		return time.Time{}, false
	}
	return l.RegistrationDate.AddDate(1, 0, 0), true
}

// LastModified is the update time, falling back to the creation time.
func (l Listing) LastModified() time.Time {
	if !l.UpdatedAt.IsZero() {
		return l.UpdatedAt
	}
	return l.CreatedAt
}

func LabelOf(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// TLDOf returns "." plus the last dot-separated segment of name, ".com" when that segment is empty.
func TLDOf(name string) string {
	seg := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		seg = name[i+1:]
	}
	if seg == "" {
		seg = "com"
	}
	return "." + strings.ToLower(seg)
}

// NormalizeTLD lowercases a TLD and guarantees a single leading dot, so "com" and ".COM" compare equal.
func NormalizeTLD(tld string) string {
	tld = strings.ToLower(strings.TrimSpace(tld))
	tld = strings.TrimLeft(tld, ".")
	if tld == "" {
		return ""
	}
	return "." + tld
}

// SanitizePrice maps NaN and infinities to 0.
func SanitizePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

// SplitList turns a comma separated admin field into trimmed, non-empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
