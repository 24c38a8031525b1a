package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"fancards/internal/app"
	"fancards/internal/domain"
	"fancards/internal/ledger"
)

// sessionContext maps one connection to its room and player identity.
// Commands resolve the caller through this table; nothing relies on ambient
// lookup inside the registry or engine.
type sessionContext struct {
	roomID   string
	playerID string
}

// Gateway translates inbound client commands into registry/engine calls and
// fans resulting state out to every connection attached to the room
type Gateway struct {
	registry *app.Registry
	engine   *app.Engine
	ledger   ledger.Ledger
	upgrader websocket.Upgrader
	logger   *slog.Logger

	advanceDelay     time.Duration
	depositsRequired bool

	mu       sync.RWMutex
	sessions map[string]sessionContext     // connID -> session
	conns    map[string]*Client            // connID -> client
	rooms    map[string]map[string]*Client // roomID -> connID -> client
}

// NewGateway creates the session gateway
func NewGateway(registry *app.Registry, engine *app.Engine, lg ledger.Ledger, advanceDelay time.Duration, depositsRequired bool, logger *slog.Logger) *Gateway {
	return &Gateway{
		registry: registry,
		engine:   engine,
		ledger:   lg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins; tighten for production deployments
				return true
			},
		},
		logger:           logger,
		advanceDelay:     advanceDelay,
		depositsRequired: depositsRequired,
		sessions:         make(map[string]sessionContext),
		conns:            make(map[string]*Client),
		rooms:            make(map[string]map[string]*Client),
	}
}

// ServeHTTP upgrades the request and runs the connection's pumps
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(conn, g, uuid.New().String(), g.logger)

	g.mu.Lock()
	g.conns[client.ConnID()] = client
	g.mu.Unlock()

	g.logger.Info("client connected", "connID", client.ConnID())
	client.Run()
}

// handleMessage dispatches one inbound command
func (g *Gateway) handleMessage(c *Client, data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid message format")
		return
	}

	ctx := context.Background()

	switch msg.Type {
	case CmdRoomCreateAndJoin:
		g.handleCreateAndJoin(ctx, c, msg.Payload)
	case CmdRoomJoin:
		g.handleJoin(ctx, c, msg.Payload)
	case CmdRoomJoinByCode:
		g.handleJoinByCode(ctx, c, msg.Payload)
	case CmdRoomLeave:
		g.handleLeave(ctx, c, msg.Payload)
	case CmdRoomReady:
		g.handleReady(ctx, c, msg.Payload)
	case CmdRoomDeposit:
		g.handleDeposit(ctx, c, msg.Payload)
	case CmdRoomPayout:
		g.handlePayout(ctx, c, msg.Payload)
	case CmdGameStart:
		g.handleGameStart(ctx, c, msg.Payload)
	case CmdGameSubmitCards:
		g.handleSubmitCards(ctx, c, msg.Payload)
	case CmdGameJudgePick:
		g.handleJudgePick(ctx, c, msg.Payload)
	case CmdPing:
		c.Send(NewServerMessage(EvtPong, nil))
	default:
		g.sendError(c, ErrCodeInvalidMessage, "unknown message type")
	}
}

func (g *Gateway) handleCreateAndJoin(ctx context.Context, c *Client, payload json.RawMessage) {
	var req CreateAndJoinPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	room, player, err := g.registry.CreateRoom(ctx, req.Name, req.Settings, req.PlayerName)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.attach(c, room.ID, player.ID)
	c.Send(NewServerMessage(EvtRoomCreated, &RoomJoinedPayload{Room: room, PlayerID: player.ID}))
	g.broadcastAll(NewServerMessage(EvtRoomsUpdated, nil))
}

func (g *Gateway) handleJoin(ctx context.Context, c *Client, payload json.RawMessage) {
	var req JoinPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	room, player, err := g.registry.JoinRoom(ctx, req.RoomID, req.PlayerName)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.finishJoin(c, room, player)
}

func (g *Gateway) handleJoinByCode(ctx context.Context, c *Client, payload json.RawMessage) {
	var req JoinByCodePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	room, player, err := g.registry.JoinRoomByCode(ctx, req.RoomCode, req.PlayerName)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.finishJoin(c, room, player)
}

func (g *Gateway) finishJoin(c *Client, room *domain.Room, player *domain.Player) {
	g.attach(c, room.ID, player.ID)
	c.Send(NewServerMessage(EvtRoomJoined, &RoomJoinedPayload{Room: room, PlayerID: player.ID}))
	g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
	g.broadcastAll(NewServerMessage(EvtRoomsUpdated, nil))
}

func (g *Gateway) handleLeave(ctx context.Context, c *Client, payload json.RawMessage) {
	var req RoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	session, ok := g.sessionFor(c)
	if ok && session.roomID == req.RoomID {
		room, err := g.registry.LeaveRoom(ctx, session.roomID, session.playerID)
		if err != nil {
			g.sendDomainError(c, err)
			return
		}
		if room != nil {
			g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
		}
	}

	g.detach(c)
	c.Send(NewServerMessage(EvtRoomLeft, nil))
	g.broadcastAll(NewServerMessage(EvtRoomsUpdated, nil))
}

func (g *Gateway) handleReady(ctx context.Context, c *Client, payload json.RawMessage) {
	var req ReadyPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	session, ok := g.sessionFor(c)
	if !ok || session.roomID != req.RoomID {
		g.sendDomainError(c, domain.ErrPlayerNotInRoom)
		return
	}

	room, err := g.registry.ToggleReady(ctx, session.roomID, session.playerID, req.IsReady)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
}

func (g *Gateway) handleDeposit(ctx context.Context, c *Client, payload json.RawMessage) {
	var req DepositPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	session, ok := g.sessionFor(c)
	if !ok || session.roomID != req.RoomID {
		g.sendDomainError(c, domain.ErrPlayerNotInRoom)
		return
	}

	room, err := g.registry.RecordDeposit(ctx, session.roomID, session.playerID, req.TxHash, req.WalletAddress)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	if err := g.ledger.RecordDeposit(ctx, room.ID, session.playerID, req.TxHash, req.WalletAddress); err != nil {
		g.logger.Warn("ledger deposit failed", "roomID", room.ID, "error", err)
	}

	c.Send(NewServerMessage(EvtDepositConfirmed, &DepositConfirmedPayload{TxHash: req.TxHash}))
	g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
}

func (g *Gateway) handlePayout(ctx context.Context, c *Client, payload json.RawMessage) {
	var req PayoutPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	room, err := g.registry.RecordPayout(ctx, req.RoomID, req.WinnerPlayerID, req.TxHash)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.broadcastRoom(room.ID, NewServerMessage(EvtPayoutCompleted, &PayoutCompletedPayload{
		WinnerPlayerID: req.WinnerPlayerID,
		Amount:         room.TotalPot,
		TxHash:         req.TxHash,
	}))
	g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
}

func (g *Gateway) handleGameStart(ctx context.Context, c *Client, payload json.RawMessage) {
	var req RoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	game, err := g.engine.Start(ctx, req.RoomID)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.broadcastRoom(req.RoomID, NewServerMessage(EvtGameStarted, game))
	g.broadcastAll(NewServerMessage(EvtRoomsUpdated, nil))
}

func (g *Gateway) handleSubmitCards(ctx context.Context, c *Client, payload json.RawMessage) {
	var req SubmitCardsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	session, ok := g.sessionFor(c)
	if !ok || session.roomID != req.RoomID {
		g.sendDomainError(c, domain.ErrPlayerNotInRoom)
		return
	}

	game, judging, err := g.engine.Submit(ctx, session.roomID, session.playerID, req.Cards)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.broadcastRoom(req.RoomID, NewServerMessage(EvtGameUpdated, game))
	if judging {
		g.broadcastRoom(req.RoomID, NewServerMessage(EvtGameJudging, game))
	}
}

func (g *Gateway) handleJudgePick(ctx context.Context, c *Client, payload json.RawMessage) {
	var req JudgePickPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		g.sendError(c, ErrCodeInvalidMessage, "invalid payload")
		return
	}

	session, ok := g.sessionFor(c)
	if !ok || session.roomID != req.RoomID {
		g.sendDomainError(c, domain.ErrPlayerNotInRoom)
		return
	}

	game, err := g.engine.JudgePick(ctx, session.roomID, session.playerID, req.SubmissionIndex)
	if err != nil {
		g.sendDomainError(c, err)
		return
	}

	g.broadcastRoom(req.RoomID, NewServerMessage(EvtGameRoundResult, game))

	// Let clients display the round winner before the session moves on.
	roomID := req.RoomID
	time.AfterFunc(g.advanceDelay, func() {
		g.advanceOrFinish(roomID)
	})
}

// advanceOrFinish runs after the inter-round delay. If the room ceased to
// exist while the timer ran this is a no-op, not an error.
func (g *Gateway) advanceOrFinish(roomID string) {
	ctx := context.Background()

	game, result, err := g.engine.AdvanceOrFinish(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) || errors.Is(err, domain.ErrGameNotFound) {
			g.logger.Debug("scheduled advance skipped, room gone", "roomID", roomID)
			return
		}
		g.logger.Error("scheduled advance failed", "roomID", roomID, "error", err)
		return
	}

	if game != nil {
		g.broadcastRoom(roomID, NewServerMessage(EvtGameNextRound, game))
		return
	}

	g.broadcastRoom(roomID, NewServerMessage(EvtGameFinished, result))
	g.broadcastAll(NewServerMessage(EvtRoomsUpdated, nil))

	if g.depositsRequired && result.Winner != "" {
		g.requestPayout(ctx, roomID, result.Winner)
	}
}

// requestPayout asks the ledger to pay the pot out to the winner. Best-effort:
// a ledger failure never affects the finished game result.
func (g *Gateway) requestPayout(ctx context.Context, roomID, winnerID string) {
	txRef, err := g.ledger.RequestPayout(ctx, roomID, winnerID)
	if err != nil {
		g.logger.Warn("payout request failed", "roomID", roomID, "winnerID", winnerID, "error", err)
		return
	}

	room, err := g.registry.RecordPayout(ctx, roomID, winnerID, txRef)
	if err != nil {
		g.logger.Warn("payout record failed", "roomID", roomID, "error", err)
		return
	}

	g.broadcastRoom(roomID, NewServerMessage(EvtPayoutCompleted, &PayoutCompletedPayload{
		WinnerPlayerID: winnerID,
		Amount:         room.TotalPot,
		TxHash:         txRef,
	}))
}

// handleDisconnect records the drop and tells the remaining participants
func (g *Gateway) handleDisconnect(c *Client) {
	session, hadSession := g.sessionFor(c)

	g.mu.Lock()
	delete(g.conns, c.ConnID())
	delete(g.sessions, c.ConnID())
	if hadSession {
		if members, ok := g.rooms[session.roomID]; ok {
			delete(members, c.ConnID())
			if len(members) == 0 {
				delete(g.rooms, session.roomID)
			}
		}
	}
	g.mu.Unlock()

	if !hadSession {
		return
	}

	room, err := g.registry.RecordDisconnect(context.Background(), session.roomID, session.playerID)
	if err != nil {
		g.logger.Error("disconnect bookkeeping failed", "roomID", session.roomID, "error", err)
		return
	}
	if room != nil {
		g.broadcastRoom(room.ID, NewServerMessage(EvtRoomUpdated, room))
	}

	g.logger.Info("client disconnected", "connID", c.ConnID(), "roomID", session.roomID)
}

// attach binds a connection to a room/player identity and its room topic
func (g *Gateway) attach(c *Client, roomID, playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// A connection holds at most one session; leaving any previous topic
	// keeps the fan-out maps consistent.
	if prev, ok := g.sessions[c.ConnID()]; ok {
		if members, ok := g.rooms[prev.roomID]; ok {
			delete(members, c.ConnID())
			if len(members) == 0 {
				delete(g.rooms, prev.roomID)
			}
		}
	}

	g.sessions[c.ConnID()] = sessionContext{roomID: roomID, playerID: playerID}
	members, ok := g.rooms[roomID]
	if !ok {
		members = make(map[string]*Client)
		g.rooms[roomID] = members
	}
	members[c.ConnID()] = c
}

// detach clears a connection's session and topic membership
func (g *Gateway) detach(c *Client) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[c.ConnID()]
	if !ok {
		return
	}

	delete(g.sessions, c.ConnID())
	if members, ok := g.rooms[session.roomID]; ok {
		delete(members, c.ConnID())
		if len(members) == 0 {
			delete(g.rooms, session.roomID)
		}
	}
}

// sessionFor resolves the caller's room/player identity
func (g *Gateway) sessionFor(c *Client) (sessionContext, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	session, ok := g.sessions[c.ConnID()]
	return session, ok
}

// broadcastRoom fans an event out to every connection attached to the room
func (g *Gateway) broadcastRoom(roomID string, msg *ServerMessage) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, client := range g.rooms[roomID] {
		if err := client.Send(msg); err != nil {
			g.logger.Debug("broadcast send failed", "connID", client.ConnID(), "error", err)
		}
	}
}

// broadcastAll fans an event out to every connection
func (g *Gateway) broadcastAll(msg *ServerMessage) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, client := range g.conns {
		if err := client.Send(msg); err != nil {
			g.logger.Debug("broadcast send failed", "connID", client.ConnID(), "error", err)
		}
	}
}

// sendError emits a structured failure only to the originating caller
func (g *Gateway) sendError(c *Client, code, message string) {
	c.Send(NewServerMessage(EvtError, &ErrorPayload{Message: message, Code: code}))
}

// sendDomainError translates a domain error into a wire error code
func (g *Gateway) sendDomainError(c *Client, err error) {
	g.sendError(c, errorCode(err), err.Error())
}

// errorCode maps domain errors onto wire error codes
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		return ErrCodeRoomNotFound
	case errors.Is(err, domain.ErrRoomFull):
		return ErrCodeRoomFull
	case errors.Is(err, domain.ErrGameInProgress):
		return ErrCodeGameInProgress
	case errors.Is(err, domain.ErrPlayerNotInRoom):
		return ErrCodePlayerNotInRoom
	case errors.Is(err, domain.ErrGameNotFound):
		return ErrCodeGameNotFound
	case errors.Is(err, domain.ErrWrongPhase):
		return ErrCodeWrongPhase
	case errors.Is(err, domain.ErrNotPicker):
		return ErrCodeNotPicker
	case errors.Is(err, domain.ErrPickerCannotSubmit):
		return ErrCodePickerCannotSubmit
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return ErrCodeDuplicateSubmission
	case errors.Is(err, domain.ErrInvalidSubmissionSize):
		return ErrCodeInvalidSubmissionSize
	case errors.Is(err, domain.ErrInvalidIndex):
		return ErrCodeInvalidIndex
	case errors.Is(err, domain.ErrNotEnoughPlayers):
		return ErrCodeNotEnoughPlayers
	case errors.Is(err, domain.ErrPlayersNotReady):
		return ErrCodePlayersNotReady
	case errors.Is(err, domain.ErrInvalidSettings):
		return ErrCodeInvalidSettings
	default:
		return ErrCodeInternalError
	}
}
