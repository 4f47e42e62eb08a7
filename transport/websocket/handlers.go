package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const errNotConnected = "connect first"

// errors that are safe to show the player as is.
var publicErrors = []error{
	apperror.ErrNoActiveGame,
	apperror.ErrGameFinished,
	apperror.ErrGameIsNotStarted,
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	entity.ErrInvalidCell,
}

func (that *Server) handleConnect(ctx context.Context, msg *Message, sess *session) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.sendErrorResponse(sess, msg.Action, "failed to create a new player")
	}

	sess.playerID = player.ID

	payloadResp := Payload{Player: player}

	game, err := that.gameUseCase.GetActiveGame(ctx, player)
	switch {
	case err == nil:
		payloadResp.Game = game
	case !errors.Is(err, apperror.ErrNoActiveGame):
		log.Error("failed to get game", "gameID", player.GameID, "error", err)
	}

	log.Info("player connected", "playerID", player.ID)

	return that.sendMessage(sess, msg.Action, payloadResp)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, sess *session) error {
	if !sess.isConnected() {
		return that.sendErrorResponse(sess, msg.Action, errNotConnected)
	}

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	game, err := that.gameUseCase.NewGame(ctx, sess.playerID, payloadReq.Difficulty)

	return that.respondWithGame(sess, msg.Action, game, err, "failed to create a new game")
}

func (that *Server) handleChangeDifficulty(ctx context.Context, msg *Message, sess *session) error {
	if !sess.isConnected() {
		return that.sendErrorResponse(sess, msg.Action, errNotConnected)
	}

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	if payloadReq.Difficulty == "" {
		return that.sendErrorResponse(sess, msg.Action, "difficulty is required")
	}

	game, err := that.gameUseCase.ChangeDifficulty(ctx, sess.playerID, payloadReq.Difficulty)

	return that.respondWithGame(sess, msg.Action, game, err, "failed to change difficulty")
}

func (that *Server) handleResetGame(ctx context.Context, msg *Message, sess *session) error {
	if !sess.isConnected() {
		return that.sendErrorResponse(sess, msg.Action, errNotConnected)
	}

	game, err := that.gameUseCase.ResetGame(ctx, sess.playerID)

	return that.respondWithGame(sess, msg.Action, game, err, "failed to reset the game")
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, sess *session) error {
	if !sess.isConnected() {
		return that.sendErrorResponse(sess, msg.Action, errNotConnected)
	}

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(sess, msg.Action, "malformed payload")
	}

	if payloadReq.Cell == nil {
		return that.sendErrorResponse(sess, msg.Action, "cell is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, sess.playerID, *payloadReq.Cell)

	return that.respondWithGame(sess, msg.Action, game, err, "failed to make turn")
}

func (that *Server) respondWithGame(sess *session, action string, game *entity.Game, err error, fallback string) error {
	if err != nil {
		for _, known := range publicErrors {
			if errors.Is(err, known) {
				return that.sendErrorResponse(sess, action, known.Error())
			}
		}

		that.logger.Error(fallback, "playerID", sess.playerID, "error", err)
		return that.sendErrorResponse(sess, action, fallback)
	}

	return that.sendMessage(sess, action, Payload{Game: game})
}
