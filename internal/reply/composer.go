package reply

import (
	"context"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/advice"
	"github.com/xaenox/nyaymitra-bot/internal/classifier"
	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/referral"
)

// Composer turns a normalised query into the final reply text.
type Composer struct {
	classifier classifier.Classifier
	referrals  referral.Finder
	advisor    advice.Generator
	limit      int
	logger     *zap.Logger
}

func NewComposer(clf classifier.Classifier, referrals referral.Finder, advisor advice.Generator, limit int, logger *zap.Logger) *Composer {
	if limit <= 0 {
		limit = referral.DefaultLimit
	}
	return &Composer{
		classifier: clf,
		referrals:  referrals,
		advisor:    advisor,
		limit:      limit,
		logger:     logger,
	}
}

// Compose classifies the query, looks up referrals, asks for advice and joins
// prefix, advice, referral block and disclaimer.
func (c *Composer) Compose(ctx context.Context, intake models.NormalizedIntake, jurisdiction models.JurisdictionRecord) models.OutboundReply {
	category := c.classifier.Classify(intake.Query)
	if scorer, ok := c.classifier.(classifier.Scorer); ok && c.logger.Core().Enabled(zap.DebugLevel) {
		c.logger.Debug("Category scores",
			zap.Any("scores", scorer.Scores(intake.Query)),
			zap.String("category", category.String()))
	}

	var contacts []models.ReferralContact
	if !category.IsNone() {
		contacts = c.referrals.Find(category, c.limit)
	}

	adviceText := c.advisor.Generate(ctx, intake.Query, jurisdiction.Display, category)

	c.logger.Info("Reply composed",
		zap.String("category", category.String()),
		zap.String("jurisdiction", jurisdiction.Display),
		zap.Int("referrals", len(contacts)),
		zap.Bool("simulated", intake.Simulated))

	return models.OutboundReply{
		Text:               intake.Prefix + adviceText + referral.FormatSuggestions(contacts) + Disclaimer,
		Jurisdiction:       jurisdiction.Display,
		Category:           category,
		ReferralsSuggested: len(contacts) > 0,
	}
}
