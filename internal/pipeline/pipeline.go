package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/intake"
	"github.com/xaenox/nyaymitra-bot/internal/location"
	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/reply"
)

type Composer interface {
	Compose(ctx context.Context, in models.NormalizedIntake, jurisdiction models.JurisdictionRecord) models.OutboundReply
}

type Intake interface {
	Process(ctx context.Context, msg models.InboundMessage) intake.Outcome
}

// Pipeline is the outermost boundary between a channel and the reply logic.
// Every call returns a non-empty reply ending with the disclaimer.
type Pipeline struct {
	intake   Intake
	composer Composer
	timeout  time.Duration
	logger   *zap.Logger
}

func New(in Intake, composer Composer, timeout time.Duration, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		intake:   in,
		composer: composer,
		timeout:  timeout,
		logger:   logger,
	}
}

// Handle processes a channel message. The jurisdiction is resolved from the
// message body.
func (p *Pipeline) Handle(ctx context.Context, msg models.InboundMessage) models.OutboundReply {
	logger := p.logger.With(
		zap.String("request_id", uuid.New().String()),
		zap.String("sender", msg.Sender))

	jurisdiction := location.Resolve(msg.Body)

	return p.run(ctx, logger, jurisdiction, func(ctx context.Context) models.OutboundReply {
		outcome := p.intake.Process(ctx, msg)
		logger.Info("Message classified",
			zap.String("modality", string(outcome.Modality)),
			zap.Bool("terminal", outcome.Terminal))

		if outcome.Terminal {
			return models.OutboundReply{
				Text:         outcome.Reply,
				Jurisdiction: jurisdiction.Display,
			}
		}

		return p.composer.Compose(ctx, outcome.Intake, jurisdiction)
	})
}

// HandleChat answers a text question with an explicit location, as used by
// the JSON chat API. The message is not translated and carries no prefix.
func (p *Pipeline) HandleChat(ctx context.Context, message, rawLocation string) models.OutboundReply {
	logger := p.logger.With(zap.String("request_id", uuid.New().String()))

	jurisdiction := location.Resolve(rawLocation)

	return p.run(ctx, logger, jurisdiction, func(ctx context.Context) models.OutboundReply {
		return p.composer.Compose(ctx, models.NormalizedIntake{Query: strings.TrimSpace(message)}, jurisdiction)
	})
}

// run calls fn under the timeout. A panic or an empty reply becomes the
// apology, still carrying the resolved jurisdiction.
func (p *Pipeline) run(ctx context.Context, logger *zap.Logger, jurisdiction models.JurisdictionRecord, fn func(ctx context.Context) models.OutboundReply) (out models.OutboundReply) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Error processing message",
				zap.Error(fmt.Errorf("panic: %v", r)),
				zap.Stack("stack"))
			out = models.OutboundReply{Text: reply.ApologyMessage, Jurisdiction: jurisdiction.Display}
		}
	}()

	out = fn(ctx)
	if strings.TrimSpace(out.Text) == "" {
		logger.Error("Empty reply produced")
		return models.OutboundReply{Text: reply.ApologyMessage, Jurisdiction: jurisdiction.Display}
	}
	out.Text = reply.EnsureDisclaimer(out.Text)
	return out
}
