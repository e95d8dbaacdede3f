package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/models"
)

// Handler produces the reply for an inbound message.
type Handler interface {
	Handle(ctx context.Context, msg models.InboundMessage) models.OutboundReply
}

// FileResolver turns a Telegram file id into a downloadable URL.
type FileResolver interface {
	GetFileDirectURL(fileID string) (string, error)
}

type Bot struct {
	api     *tgbotapi.BotAPI
	handler Handler
	logger  *zap.Logger
}

func New(token string, handler Handler, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:     api,
		handler: handler,
		logger:  logger,
	}, nil
}

// Start polls for updates until ctx is cancelled. Each message is handled in
// its own goroutine; replies may go out in any order.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("Telegram bot started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	inbound := ToInbound(message, b.api, b.logger)
	reply := b.handler.Handle(ctx, inbound)

	msg := tgbotapi.NewMessage(message.Chat.ID, reply.Text)
	msg.ReplyToMessageID = message.MessageID
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

// ToInbound maps a Telegram message onto the channel-neutral message model.
// Voice notes, audio, photos and image documents become a single media
// attachment; bot commands are reduced to their name so /start greets.
func ToInbound(message *tgbotapi.Message, files FileResolver, logger *zap.Logger) models.InboundMessage {
	inbound := models.InboundMessage{
		Body: message.Text,
	}
	if message.Caption != "" {
		inbound.Body = message.Caption
	}
	if message.IsCommand() {
		inbound.Body = message.Command()
	}

	if message.From != nil {
		inbound.Sender = "telegram:" + strconv.FormatInt(message.From.ID, 10)
		inbound.ProfileName = strings.TrimSpace(message.From.FirstName + " " + message.From.LastName)
	} else if message.Chat != nil {
		inbound.Sender = "telegram:" + strconv.FormatInt(message.Chat.ID, 10)
	}

	if message.Location != nil {
		lat, lon := message.Location.Latitude, message.Location.Longitude
		inbound.Latitude = &lat
		inbound.Longitude = &lon
		inbound.Body = "📍"
		if message.Venue != nil {
			inbound.Address = strings.TrimSpace(message.Venue.Title + ", " + message.Venue.Address)
			inbound.Body = inbound.Address
		}
		return inbound
	}

	fileID, contentType := attachment(message)
	if fileID == "" {
		return inbound
	}

	url, err := files.GetFileDirectURL(fileID)
	if err != nil {
		logger.Warn("Failed to resolve Telegram file URL",
			zap.Error(err),
			zap.String("file_id", fileID))
	}

	inbound.NumMedia = 1
	inbound.MediaURL = url
	inbound.MediaContentType = contentType
	return inbound
}

func attachment(message *tgbotapi.Message) (fileID, contentType string) {
	switch {
	case message.Voice != nil:
		return message.Voice.FileID, orDefault(message.Voice.MimeType, "audio/ogg")
	case message.Audio != nil:
		return message.Audio.FileID, orDefault(message.Audio.MimeType, "audio/mpeg")
	case len(message.Photo) > 0:
		// Telegram lists sizes smallest first.
		return message.Photo[len(message.Photo)-1].FileID, "image/jpeg"
	case message.Document != nil && strings.HasPrefix(message.Document.MimeType, "image/"):
		return message.Document.FileID, message.Document.MimeType
	default:
		return "", ""
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
