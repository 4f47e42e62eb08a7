package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/solver"
)

type BotHandler interface {
	Move(ctx *gin.Context)
	Evaluate(ctx *gin.Context)
}

type botServiceDep interface {
	SuggestMove(board entity.Board, bot entity.Mark, difficulty entity.Difficulty) (int, error)
	Evaluate(board entity.Board, bot, toMove entity.Mark) (solver.Move, error)
}

type moveRequest struct {
	Board      []string `json:"board" binding:"required"`
	Difficulty string   `json:"difficulty"`
	Bot        string   `json:"bot"`
}

type moveResponse struct {
	Cell int `json:"cell"`
}

type evaluateRequest struct {
	Board  []string `json:"board" binding:"required"`
	Bot    string   `json:"bot"`
	ToMove string   `json:"to_move"`
}

type botHandler struct {
	logger *slog.Logger
	bot    botServiceDep
}

func NewBotHandler(logger *slog.Logger, bot botServiceDep) BotHandler {
	return &botHandler{
		logger: logger.With("component", "rest-bot"),
		bot:    bot,
	}
}

// Move answers with the bot's cell for a detached board. The bot plays O unless told otherwise.
func (that *botHandler) Move(ctx *gin.Context) {
	log := that.logger.With("method", "Move")

	var req moveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "board is required"})
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	botMark, err := entity.ParseMark(req.Bot, entity.PlayerO)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cell, err := that.bot.SuggestMove(board, botMark, entity.ParseDifficulty(req.Difficulty))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to suggest move", "error", err)
		}

		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, moveResponse{Cell: cell})
}

// Evaluate returns the raw minimax result; to_move defaults to the bot.
func (that *botHandler) Evaluate(ctx *gin.Context) {
	var req evaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "board is required"})
		return
	}

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	botMark, err := entity.ParseMark(req.Bot, entity.PlayerO)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	toMove, err := entity.ParseMark(req.ToMove, botMark)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	move, err := that.bot.Evaluate(board, botMark, toMove)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, move)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrBoardDecided):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidCell),
		errors.Is(err, entity.ErrInvalidMark),
		errors.Is(err, apperror.ErrInvalidBoard),
		errors.Is(err, apperror.ErrNoAvailableMoves),
		errors.Is(err, apperror.ErrBotNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
