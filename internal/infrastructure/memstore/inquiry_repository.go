package memstore

import (
	"github.com/megaar/comercial-api/internal/domain"
	"github.com/megaar/comercial-api/internal/domain/entity"
	"github.com/megaar/comercial-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo implementação do porto InquiryRepository sobre o documento.
type InquiryRepo struct {
	src Source
}

// NewInquiryRepository constrói o adaptador. Passar a Store ou uma tx (Source).
func NewInquiryRepository(src Source) *InquiryRepo {
	return &InquiryRepo{src: src}
}

// Create persiste um novo ofício. Id repetido → ErrDuplicate.
func (r *InquiryRepo) Create(inquiry *entity.Inquiry) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Inquiries {
			if d.Inquiries[i].ID == inquiry.ID {
				return domain.ErrDuplicate
			}
		}
		d.Inquiries = append(d.Inquiries, *inquiry)
		return nil
	})
}

// GetByID devolve o ofício ou (nil, nil) quando não existe.
func (r *InquiryRepo) GetByID(id string) (*entity.Inquiry, error) {
	var out *entity.Inquiry
	err := r.src.view(func(d *Document) error {
		for i := range d.Inquiries {
			if d.Inquiries[i].ID == id {
				iq := d.Inquiries[i]
				out = &iq
				return nil
			}
		}
		return nil
	})
	return out, err
}

// List devolve todos os ofícios.
func (r *InquiryRepo) List() ([]*entity.Inquiry, error) {
	var out []*entity.Inquiry
	err := r.src.view(func(d *Document) error {
		for i := range d.Inquiries {
			iq := d.Inquiries[i]
			out = append(out, &iq)
		}
		return nil
	})
	return out, err
}

// ListByClient devolve os ofícios de um cliente.
func (r *InquiryRepo) ListByClient(clientID string) ([]*entity.Inquiry, error) {
	var out []*entity.Inquiry
	err := r.src.view(func(d *Document) error {
		for i := range d.Inquiries {
			if d.Inquiries[i].ClientID == clientID {
				iq := d.Inquiries[i]
				out = append(out, &iq)
			}
		}
		return nil
	})
	return out, err
}

// Update substitui o ofício com o mesmo id; inexistente é no-op.
func (r *InquiryRepo) Update(inquiry *entity.Inquiry) error {
	return r.src.mutate(func(d *Document) error {
		for i := range d.Inquiries {
			if d.Inquiries[i].ID == inquiry.ID {
				d.Inquiries[i] = *inquiry
				return nil
			}
		}
		return nil
	})
}

// HasInterested indica se existe um ofício interested para o par (cliente, produto).
func (r *InquiryRepo) HasInterested(clientID, productID string) (bool, error) {
	found := false
	err := r.src.view(func(d *Document) error {
		for i := range d.Inquiries {
			iq := &d.Inquiries[i]
			if iq.ClientID == clientID && iq.ProductID == productID &&
				iq.Status == entity.InquiryStatusInterested {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

// HasReachedCatalog indica se algum ofício do par atingiu catalog_sent,
// proposal_sent ou interested.
func (r *InquiryRepo) HasReachedCatalog(clientID, productID string) (bool, error) {
	found := false
	err := r.src.view(func(d *Document) error {
		for i := range d.Inquiries {
			iq := &d.Inquiries[i]
			if iq.ClientID != clientID || iq.ProductID != productID {
				continue
			}
			switch iq.Status {
			case entity.InquiryStatusCatalogSent, entity.InquiryStatusProposalSent,
				entity.InquiryStatusInterested:
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}
