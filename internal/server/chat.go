package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const defaultChatLocation = "Bengaluru, Karnataka"

type chatRequest struct {
	Message   string  `json:"message"`
	Location  string  `json:"location"`
	SessionID *string `json:"session_id,omitempty"`
}

type chatResponse struct {
	Reply            string  `json:"reply"`
	Category         *string `json:"category"`
	LocationResolved string  `json:"location_resolved"`
	LawyersSuggested bool    `json:"lawyers_suggested"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Message cannot be empty"})
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		req.Location = defaultChatLocation
	}

	s.logger.Info("Chat API request",
		zap.Int("message_len", len(req.Message)),
		zap.String("location", req.Location))

	out := s.pipeline.HandleChat(r.Context(), req.Message, req.Location)

	resp := chatResponse{
		Reply:            out.Text,
		LocationResolved: out.Jurisdiction,
		LawyersSuggested: out.ReferralsSuggested,
	}
	if !out.Category.IsNone() {
		category := out.Category.String()
		resp.Category = &category
	}

	writeJSON(w, http.StatusOK, resp)
}
