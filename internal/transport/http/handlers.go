package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"fancards/internal/domain"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	OpenRooms    int `json:"openRooms"`
	ActiveGames  int `json:"activeGames"`
	TotalPlayers int `json:"totalPlayers"`
}

// handleListRooms handles GET /api/rooms
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.registry.ListOpenRooms(r.Context())
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}

	s.sendSuccess(w, rooms)
}

// handleGetRoom handles GET /api/rooms/{roomId}
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomId")
	if roomID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_ID", "Room id is required")
		return
	}

	room, err := s.store.GetRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, room)
}

// handleRoomQR handles GET /api/rooms/{roomId}/qr. It renders a PNG QR code
// of the join link for the room so hosts can share it on a shared screen.
func (s *Server) handleRoomQR(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomId")
	if roomID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_ID", "Room id is required")
		return
	}

	if _, err := s.store.GetRoom(r.Context(), roomID); err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	size := 256
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 64 && n <= 1024 {
			size = n
		}
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	joinLink := scheme + "://" + r.Host + "/join/" + roomID

	png, err := qrcode.Encode(joinLink, qrcode.Medium, size)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleGetGame handles GET /api/game/{roomId}
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomId")
	if roomID == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_ID", "Room id is required")
		return
	}

	game, err := s.store.GetGame(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			s.sendError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, game)
}

// handleCards handles GET /api/cards
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, s.deck.Catalog())
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	waiting, err := s.store.ListRoomsByState(r.Context(), domain.RoomWaiting)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to gather stats")
		return
	}
	playing, err := s.store.ListRoomsByState(r.Context(), domain.RoomPlaying)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to gather stats")
		return
	}

	players := 0
	for _, room := range waiting {
		players += len(room.Players)
	}
	for _, room := range playing {
		players += len(room.Players)
	}

	s.sendSuccess(w, &StatsResponse{
		OpenRooms:    len(waiting),
		ActiveGames:  len(playing),
		TotalPlayers: players,
	})
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
