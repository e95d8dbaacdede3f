package referral

import (
	"context"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/storage"
)

// Directory is the read-only list of referral contacts, in declaration order.
// It is loaded once and safe for concurrent readers.
type Directory struct {
	contacts []models.ReferralContact
}

func NewDirectory(contacts []models.ReferralContact) *Directory {
	return &Directory{contacts: append([]models.ReferralContact(nil), contacts...)}
}

// LoadDirectory reads the directory from store. A missing or malformed source
// yields an empty directory so requests keep working without referrals.
func LoadDirectory(ctx context.Context, store storage.Storage, logger *zap.Logger) *Directory {
	contacts, err := store.LoadContacts(ctx)
	if err != nil {
		logger.Warn("Referral directory unavailable, continuing without referrals", zap.Error(err))
		return NewDirectory(nil)
	}

	logger.Info("Referral directory loaded", zap.Int("contacts", len(contacts)))
	return NewDirectory(contacts)
}

func (d *Directory) Len() int {
	return len(d.contacts)
}
