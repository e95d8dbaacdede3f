package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/xaenox/nyaymitra-bot/internal/rights"
)

const defaultCardLanguage = "English"

type rightsCardRequest struct {
	Situation string `json:"situation"`
	Language  string `json:"language"`
	Location  string `json:"location"`
}

type situationsResponse struct {
	Situations []rights.Situation `json:"situations"`
}

func (s *Server) handleRightsCard(w http.ResponseWriter, r *http.Request) {
	var req rightsCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = defaultCardLanguage
	}
	if strings.TrimSpace(req.Location) == "" {
		req.Location = defaultChatLocation
	}

	s.logger.Info("Rights card request",
		zap.String("situation", req.Situation),
		zap.String("language", req.Language),
		zap.String("location", req.Location))

	card, err := s.cards.Generate(r.Context(), req.Situation, req.Language, req.Location)
	if errors.Is(err, rights.ErrUnknownSituation) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Detail: "Invalid situation. Must be one of: " + strings.Join(rights.SituationIDs(), ", "),
		})
		return
	}
	if err != nil {
		s.logger.Error("Failed to generate rights card", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Failed to generate card"})
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (s *Server) handleSituations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, situationsResponse{Situations: rights.Situations})
}
