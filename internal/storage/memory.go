package storage

import (
	"context"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// MemoryStorage serves a fixed set of contacts. With no contacts it is the
// "memory" directory source: the service runs with referrals disabled.
type MemoryStorage struct {
	contacts []models.ReferralContact
}

func NewMemoryStorage(contacts ...models.ReferralContact) *MemoryStorage {
	return &MemoryStorage{
		contacts: append([]models.ReferralContact(nil), contacts...),
	}
}

func (s *MemoryStorage) LoadContacts(ctx context.Context) ([]models.ReferralContact, error) {
	return append([]models.ReferralContact(nil), s.contacts...), nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
