package entity

import (
	"errors"
	"time"
)

type CartItem struct {
	ListingID string    `json:"listing_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	AddedAt   time.Time `json:"added_at"`
}

// Cart belongs to an anonymous visitor; each domain can appear at most once.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(id string) *Cart {
	return &Cart{
		ID:        id,
		Items:     make([]CartItem, 0),
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Cart) indexOf(listingID string) int {
	for i, item := range c.Items {
		if item.ListingID == listingID {
			return i
		}
	}
	return -1
}

func (c *Cart) Has(listingID string) bool {
	return c.indexOf(listingID) >= 0
}

func (c *Cart) Add(l Listing) error {
	if l.ID == "" {
		return errors.New("listing ID cannot be empty for cart item")
	}
	if !l.IsAvailable() {
		return ErrNotAvailable
	}
	if c.Has(l.ID) {
		return ErrItemAlreadyAdded
	}
	now := time.Now().UTC()
	c.Items = append(c.Items, CartItem{ListingID: l.ID, Name: l.Name, Price: l.Price, AddedAt: now})
	c.UpdatedAt = now
	return nil
}

func (c *Cart) Remove(listingID string) error {
	i := c.indexOf(listingID)
	if i == -1 {
		return ErrItemNotInCart
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

func (c *Cart) Clear() {
	c.Items = make([]CartItem, 0)
	c.UpdatedAt = time.Now().UTC()
}
