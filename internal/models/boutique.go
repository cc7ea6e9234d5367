package models

// Boutique represents a shop managed by the operator.
// Clients point at a boutique through Client.BoutiqueID.
type Boutique struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	BusinessID string `json:"businessId"`
}

// GetID returns the boutique identifier
func (b Boutique) GetID() string {
	return b.ID
}
