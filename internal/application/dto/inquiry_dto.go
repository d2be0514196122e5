package dto

import "time"

// CreateInquiryRequest entrada para registar um ofício. ClientID é ignorado
// quando o ator é um cliente (usa sempre o seu próprio). ProductID é
// opcional; sem produto o ofício fica com o rótulo de equipamento especial.
type CreateInquiryRequest struct {
	ClientID  string `json:"clientId"`
	ProductID string `json:"productId"`
	Details   string `json:"details"`
}

// UpdateInquiryStatusRequest entrada para uma transição de estado.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// InquiryResponse saída de um ofício.
type InquiryResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	ClientName    string    `json:"clientName"` // "Cliente Desconhecido" quando o id já não resolve
	ProductID     string    `json:"productId,omitempty"`
	Date          time.Time `json:"date"`
	EquipmentType string    `json:"equipmentType"`
	Details       string    `json:"details"`
	Status        string    `json:"status"`
	AssignedTo    string    `json:"assignedTo,omitempty"`
}
