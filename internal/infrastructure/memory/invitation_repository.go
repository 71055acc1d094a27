package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/Herramientas-api/internal/domain/entity"
	"github.com/jhoicas/Herramientas-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

// InvitationRepo implementación en memoria de InvitationRepository.
type InvitationRepo struct {
	s *Store
}

func NewInvitationRepository(s *Store) *InvitationRepo { return &InvitationRepo{s: s} }

func (r *InvitationRepo) Create(invitation *entity.Invitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invitations[invitation.ID] = cloneInvitation(invitation)
	return nil
}

func (r *InvitationRepo) GetByToken(token string) (*entity.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.invitations {
		if i.Token == token {
			return cloneInvitation(i), nil
		}
	}
	return nil, nil
}

// GetByTokenForUpdate no bloquea nada en memoria; las pruebas son secuenciales.
func (r *InvitationRepo) GetByTokenForUpdate(token string) (*entity.Invitation, error) {
	return r.GetByToken(token)
}

func (r *InvitationRepo) GetActiveByEmailAndCompany(email, companyID string, now time.Time) (*entity.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var best *entity.Invitation
	for _, i := range r.s.invitations {
		if i.Email == email && i.CompanyID == companyID && i.Active(now) {
			if best == nil || i.CreatedAt.After(best.CreatedAt) {
				best = i
			}
		}
	}
	if best == nil {
		return nil, nil
	}
	return cloneInvitation(best), nil
}

func (r *InvitationRepo) MarkUsed(id string, usedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i, ok := r.s.invitations[id]; ok {
		at := usedAt
		i.UsedAt = &at
	}
	return nil
}

func (r *InvitationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Invitation
	for _, i := range r.s.invitations {
		if i.CompanyID == companyID {
			list = append(list, cloneInvitation(i))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return page(list, limit, offset), nil
}
