package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomFull              = errors.New("room is full")
	ErrGameInProgress        = errors.New("game already in progress")
	ErrPlayerNotInRoom       = errors.New("player not in room")
	ErrGameNotFound          = errors.New("game not found")
	ErrWrongPhase            = errors.New("invalid action for current round phase")
	ErrNotPicker             = errors.New("only the picker can judge submissions")
	ErrPickerCannotSubmit    = errors.New("picker cannot submit cards")
	ErrDuplicateSubmission   = errors.New("already submitted this round")
	ErrInvalidSubmissionSize = errors.New("submission size does not match prompt blanks")
	ErrInvalidIndex          = errors.New("invalid submission index")
	ErrNotEnoughPlayers      = errors.New("not enough players to start")
	ErrPlayersNotReady       = errors.New("all players must be ready")
	ErrInvalidSettings       = errors.New("invalid room settings")
)
