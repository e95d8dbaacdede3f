package storage

import (
	"context"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// Storage is a source the referral directory is loaded from at startup.
type Storage interface {
	LoadContacts(ctx context.Context) ([]models.ReferralContact, error)
	Close() error
}
