package entity

import "time"

// InterestLog records one visit to a domain detail page.
type InterestLog struct {
	DomainID     string    `json:"domain_id"`
	IPAddress    string    `json:"ip_address"`
	ViewDuration int       `json:"view_duration"`
	CreatedAt    time.Time `json:"created_at"`
}
