package entity

import "time"

// Client representa a identidade comercial de um cliente MEGA-AR.
// Um Client pode ter zero ou um User associado (role=client, via User.ClientID).
type Client struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	NIF              string    `json:"nif"`
	Address          string    `json:"address"`
	Email            string    `json:"email"`
	HasSpecialCredit bool      `json:"hasSpecialCredit"` // permite pagamento em prestações
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
