package entity

import "time"

// Estados do ciclo de vida de um Inquiry (Ofício).
// O caminho feliz é pending → catalog_sent → proposal_sent → interested;
// rejected é um estado absorvente alcançável de qualquer estado não terminal.
const (
	InquiryStatusPending      = "pending"
	InquiryStatusCatalogSent  = "catalog_sent"
	InquiryStatusProposalSent = "proposal_sent"
	InquiryStatusInterested   = "interested"
	InquiryStatusRejected     = "rejected"
)

// Inquiry representa um Ofício: a solicitação inicial de interesse de um
// cliente num equipamento. Refere no máximo um produto; sem produto
// escolhido, EquipmentType guarda um rótulo livre.
type Inquiry struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	ProductID     string    `json:"productId,omitempty"`
	Date          time.Time `json:"date"`
	EquipmentType string    `json:"equipmentType"`
	Details       string    `json:"details"`
	Status        string    `json:"status"`
	AssignedTo    string    `json:"assignedTo,omitempty"` // funcionário que tratou a última transição
}

// Terminal indica se o ofício chegou a um estado final.
func (i *Inquiry) Terminal() bool {
	return i.Status == InquiryStatusInterested || i.Status == InquiryStatusRejected
}

// ValidInquiryStatus valida um estado de ofício.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusCatalogSent, InquiryStatusProposalSent,
		InquiryStatusInterested, InquiryStatusRejected:
		return true
	}
	return false
}
