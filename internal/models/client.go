package models

// Client is a customer of a boutique.
// BoutiqueID is a weak reference: the boutique may no longer exist.
type Client struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BoutiqueID string `json:"boutiqueId"`
}

// GetID returns the client identifier
func (c Client) GetID() string {
	return c.ID
}
