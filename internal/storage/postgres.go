package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.ConnString())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	// Initialize database schema
	if err := storage.initializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema(ctx context.Context) error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

// LoadContacts returns every contact in declaration order (position column).
func (s *PostgresStorage) LoadContacts(ctx context.Context) ([]models.ReferralContact, error) {
	query := `
		SELECT id, name, specialty, area, phone, fee_type, is_ngo, languages
		FROM referral_contacts
		ORDER BY position ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying referral contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.ReferralContact
	for rows.Next() {
		var (
			contact models.ReferralContact
			feeType string
		)
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Specialty,
			&contact.Area,
			&contact.Phone,
			&feeType,
			&contact.IsNGO,
			pq.Array(&contact.Languages),
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning referral contact: %w", err)
		}
		contact.FeeType = models.FeeType(feeType)
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating referral contacts: %w", err)
	}

	s.logger.Debug("Loaded referral contacts from database", zap.Int("count", len(contacts)))
	return contacts, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
