package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-bot/internal/analytics"
	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	GetActiveGame(ctx context.Context, player *entity.Player) (*entity.Game, error)

	NewGame(ctx context.Context, playerID, difficulty string) (*entity.Game, error)
	ResetGame(ctx context.Context, playerID string) (*entity.Game, error)
	ChangeDifficulty(ctx context.Context, playerID, difficulty string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) (int, error)
}

type publisherDep interface {
	Publish(ctx context.Context, name, key string, payload map[string]any) error
}

type gameUseCase struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	bot        botServiceDep
	publisher  publisherDep

	defaultDifficulty entity.Difficulty

	newID      func() string
	playerMark func() entity.Mark
}

func NewGameUseCase(
	logger *slog.Logger,
	playerRepo playerRepoDep,
	gameRepo gameRepoDep,
	bot botServiceDep,
	publisher publisherDep,
	defaultDifficulty string,
) GameUseCase {
	return &gameUseCase{
		logger:            logger.With("component", "game-usecase"),
		playerRepo:        playerRepo,
		gameRepo:          gameRepo,
		bot:               bot,
		publisher:         publisher,
		defaultDifficulty: entity.ParseDifficulty(defaultDifficulty),
		newID:             uuid.NewString,
		playerMark:        entity.RandomPlayerMark,
	}
}

// GetOrCreatePlayer - an empty id registers a new player; an expired one is registered again under the same id.
func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		return that.createPlayer(ctx, that.newID())
	}

	player, err := that.playerRepo.GetByID(ctx, playerID)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		return that.createPlayer(ctx, playerID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) createPlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player := &entity.Player{ID: playerID}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) GetActiveGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if !player.HasGame() {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, apperror.ErrNoActiveGame
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) NewGame(ctx context.Context, playerID, difficulty string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return that.startGame(ctx, player, that.parseDifficulty(difficulty))
}

// ChangeDifficulty restarts the round at the new level. Picking the current level keeps the round.
func (that *gameUseCase) ChangeDifficulty(ctx context.Context, playerID, difficulty string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	level := that.parseDifficulty(difficulty)

	game, err := that.GetActiveGame(ctx, player)
	switch {
	case err == nil && game.Difficulty == level:
		return game, nil
	case err != nil && !errors.Is(err, apperror.ErrNoActiveGame):
		return nil, err
	}

	return that.startGame(ctx, player, level)
}

// ResetGame restarts the round at the level of the current game.
func (that *gameUseCase) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	difficulty := that.defaultDifficulty

	game, err := that.GetActiveGame(ctx, player)
	switch {
	case err == nil:
		difficulty = game.Difficulty
	case !errors.Is(err, apperror.ErrNoActiveGame):
		return nil, err
	}

	return that.startGame(ctx, player, difficulty)
}

func (that *gameUseCase) startGame(ctx context.Context, player *entity.Player, difficulty entity.Difficulty) (*entity.Game, error) {
	log := that.logger.With("method", "startGame", "playerID", player.ID)

	previousGameID := player.GameID

	game := entity.NewGame(that.newID(), difficulty)
	game.Start(that.playerMark())

	if game.IsBotTurn() {
		if _, err := that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	player.GameID = game.ID
	player.Mark = game.PlayerMark
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		player.GameID = previousGameID
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	// the old round goes only once the player points at the new one
	if previousGameID != "" && previousGameID != game.ID {
		if err := that.gameRepo.DeleteByID(ctx, previousGameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
			log.Error("failed to delete previous game", "gameID", previousGameID, "error", err)
		}
	}

	log.Info("game started", "gameID", game.ID, "difficulty", game.Difficulty, "playerMark", game.PlayerMark)

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.GetActiveGame(ctx, player)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.publishFinished(ctx, game)
	}

	return game, nil
}

func (that *gameUseCase) publishFinished(ctx context.Context, game *entity.Game) {
	payload := map[string]any{
		"game_id":     game.ID,
		"difficulty":  game.Difficulty,
		"winner":      game.Winner,
		"player_mark": game.PlayerMark,
		"bot_mark":    game.BotMark,
	}

	if err := that.publisher.Publish(ctx, analytics.EventGameFinished, game.ID, payload); err != nil {
		that.logger.Error("failed to publish finished game", "gameID", game.ID, "error", err)
	}
}

func (that *gameUseCase) parseDifficulty(raw string) entity.Difficulty {
	if raw == "" {
		return that.defaultDifficulty
	}
	return entity.ParseDifficulty(raw)
}
