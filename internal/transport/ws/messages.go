package ws

import (
	"encoding/json"
	"time"

	"fancards/internal/domain"
)

// Client → Server command names
const (
	CmdRoomCreateAndJoin = "room:create-and-join"
	CmdRoomJoin          = "room:join"
	CmdRoomJoinByCode    = "room:join-by-code"
	CmdRoomLeave         = "room:leave"
	CmdRoomReady         = "room:ready"
	CmdRoomDeposit       = "room:deposit"
	CmdRoomPayout        = "room:payout"
	CmdGameStart         = "game:start"
	CmdGameSubmitCards   = "game:submit-cards"
	CmdGameJudgePick     = "game:judge-pick"
	CmdPing              = "ping"
)

// Server → Client event names
const (
	EvtRoomCreated      = "room:created"
	EvtRoomJoined       = "room:joined"
	EvtRoomLeft         = "room:left"
	EvtRoomUpdated      = "room:updated"
	EvtRoomsUpdated     = "rooms:updated"
	EvtDepositConfirmed = "deposit:confirmed"
	EvtPayoutCompleted  = "payout:completed"
	EvtGameStarted      = "game:started"
	EvtGameUpdated      = "game:updated"
	EvtGameJudging      = "game:judging-phase"
	EvtGameRoundResult  = "game:round-result"
	EvtGameNextRound    = "game:next-round"
	EvtGameFinished     = "game:finished"
	EvtError            = "error"
	EvtPong             = "pong"
)

// ClientMessage is an inbound command envelope
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage is an outbound event envelope
type ServerMessage struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates an outbound event with the current timestamp
func NewServerMessage(eventType string, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Command payloads

// CreateAndJoinPayload creates a room and joins the caller as its creator
type CreateAndJoinPayload struct {
	Name       string              `json:"name"`
	Settings   domain.RoomSettings `json:"settings"`
	PlayerName string              `json:"playerName"`
}

// JoinPayload joins an existing room by id
type JoinPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// JoinByCodePayload joins an open room whose id ends with the given code
type JoinByCodePayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// RoomPayload carries only a room id
type RoomPayload struct {
	RoomID string `json:"roomId"`
}

// ReadyPayload toggles the caller's readiness
type ReadyPayload struct {
	RoomID  string `json:"roomId"`
	IsReady bool   `json:"isReady"`
}

// DepositPayload reports the caller's confirmed entry-fee deposit
type DepositPayload struct {
	RoomID        string `json:"roomId"`
	TxHash        string `json:"txHash"`
	WalletAddress string `json:"walletAddress"`
}

// PayoutPayload reports the confirmed winner payout transaction
type PayoutPayload struct {
	RoomID         string `json:"roomId"`
	WinnerPlayerID string `json:"winnerPlayerId"`
	TxHash         string `json:"txHash"`
}

// SubmitCardsPayload submits the caller's answer cards for the round
type SubmitCardsPayload struct {
	RoomID string              `json:"roomId"`
	Cards  []domain.AnswerCard `json:"cards"`
}

// JudgePickPayload picks the winning submission by index
type JudgePickPayload struct {
	RoomID          string `json:"roomId"`
	SubmissionIndex int    `json:"submissionIndex"`
}

// Event payloads

// RoomJoinedPayload is sent to the caller on create/join
type RoomJoinedPayload struct {
	Room     *domain.Room `json:"room"`
	PlayerID string       `json:"playerId"`
}

// DepositConfirmedPayload acknowledges a recorded deposit
type DepositConfirmedPayload struct {
	TxHash string `json:"txHash"`
}

// PayoutCompletedPayload announces the winner payout to the room
type PayoutCompletedPayload struct {
	WinnerPlayerID string `json:"winnerPlayerId"`
	Amount         string `json:"amount"`
	TxHash         string `json:"txHash"`
}

// ErrorPayload is sent only to the caller whose command failed
type ErrorPayload struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error codes
const (
	ErrCodeRoomNotFound          = "ROOM_NOT_FOUND"
	ErrCodeRoomFull              = "ROOM_FULL"
	ErrCodeGameInProgress        = "GAME_IN_PROGRESS"
	ErrCodePlayerNotInRoom       = "PLAYER_NOT_IN_ROOM"
	ErrCodeGameNotFound          = "GAME_NOT_FOUND"
	ErrCodeWrongPhase            = "WRONG_PHASE"
	ErrCodeNotPicker             = "NOT_PICKER"
	ErrCodePickerCannotSubmit    = "PICKER_CANNOT_SUBMIT"
	ErrCodeDuplicateSubmission   = "DUPLICATE_SUBMISSION"
	ErrCodeInvalidSubmissionSize = "INVALID_SUBMISSION_SIZE"
	ErrCodeInvalidIndex          = "INVALID_INDEX"
	ErrCodeNotEnoughPlayers      = "NOT_ENOUGH_PLAYERS"
	ErrCodePlayersNotReady       = "PLAYERS_NOT_READY"
	ErrCodeInvalidSettings       = "INVALID_SETTINGS"
	ErrCodeInvalidMessage        = "INVALID_MESSAGE"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)
