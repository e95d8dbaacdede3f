package server

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/models"
	"github.com/xaenox/nyaymitra-bot/internal/reply"
)

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// handleWhatsApp is the Twilio WhatsApp webhook. It always answers with a
// TwiML message, even for unreadable requests.
func (s *Server) handleWhatsApp(w http.ResponseWriter, r *http.Request) {
	text := reply.ApologyMessage
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("Invalid WhatsApp webhook form", zap.Error(err))
	} else {
		msg := inboundFromForm(r)
		s.logger.Info("WhatsApp webhook",
			zap.String("from", msg.Sender),
			zap.Int("num_media", msg.NumMedia),
			zap.String("content_type", msg.MediaContentType))
		text = s.pipeline.Handle(r.Context(), msg).Text
	}

	out, err := xml.Marshal(twimlResponse{Message: text})
	if err != nil {
		s.logger.Error("Failed to encode TwiML", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	w.Write(out)
}

func inboundFromForm(r *http.Request) models.InboundMessage {
	numMedia, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("NumMedia")))
	if err != nil || numMedia < 0 {
		numMedia = 0
	}

	return models.InboundMessage{
		Sender:           r.PostFormValue("From"),
		Body:             r.PostFormValue("Body"),
		NumMedia:         numMedia,
		MediaURL:         r.PostFormValue("MediaUrl0"),
		MediaContentType: r.PostFormValue("MediaContentType0"),
		Latitude:         parseCoordinate(r.PostFormValue("Latitude")),
		Longitude:        parseCoordinate(r.PostFormValue("Longitude")),
		Address:          r.PostFormValue("Address"),
		ProfileName:      r.PostFormValue("ProfileName"),
	}
}

func parseCoordinate(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}
