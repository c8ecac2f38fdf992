package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

type moveRepo interface {
	Save(ctx context.Context, key string, result *tictactoe.Result) error
	GetByKey(ctx context.Context, key string) (*tictactoe.Result, error)
}

// MoveRequest is a board as received from a client, in wire tokens.
type MoveRequest struct {
	Board       []string
	AISymbol    string
	HumanSymbol string

	// Strategy overrides the configured search strategy when set.
	Strategy string
}

// MoveResponse describes the game after the AI moved. Move is nil when the game was already over.
type MoveResponse struct {
	Move   *int
	AI     entity.Mark
	Human  entity.Mark
	Status entity.WinStatus
	Board  entity.Board
	Search *tictactoe.Result
}

type MoveUseCase struct {
	logger *slog.Logger

	strategy  tictactoe.Strategy
	searchers map[tictactoe.Strategy]tictactoe.Searcher

	moveRepo moveRepo
}

// NewMoveUseCase - moveRepo may be nil, in which case every move is searched.
func NewMoveUseCase(logger *slog.Logger, strategy tictactoe.Strategy, moveRepo moveRepo) (*MoveUseCase, error) {
	if _, err := tictactoe.NewSearcher(strategy); err != nil {
		return nil, fmt.Errorf("invalid default strategy: %w", err)
	}

	return &MoveUseCase{
		logger: logger.With("component", "move"),

		strategy: strategy,
		searchers: map[tictactoe.Strategy]tictactoe.Searcher{
			tictactoe.StrategyMinimax:   tictactoe.NewMinimax(),
			tictactoe.StrategyAlphaBeta: tictactoe.NewAlphaBeta(),
		},

		moveRepo: moveRepo,
	}, nil
}

// ExecuteMove - validates the request, lets the AI move when the game is still open and reports the new state.
func (that *MoveUseCase) ExecuteMove(ctx context.Context, req *MoveRequest) (*MoveResponse, error) {
	log := that.logger.With("method", "ExecuteMove")

	board, err := entity.ParseBoard(req.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	session, err := entity.NewSession(board, req.AISymbol, req.HumanSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	strategy, err := that.resolveStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	response := &MoveResponse{
		AI:     session.AI,
		Human:  session.Human,
		Status: session.Status(),
		Board:  session.Board,
	}

	if response.Status.IsTerminal() {
		log.Debug("game is already finished", "winner", response.Status.WinnerString())
		return response, nil
	}

	result, err := that.bestMove(ctx, strategy, session.Board, session.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to find move: %w", err)
	}

	session.Board, err = tictactoe.ApplyMove(session.Board, result.Move, session.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	move := result.Move
	response.Move = &move
	response.Board = session.Board
	response.Status = session.Status()
	response.Search = result

	log.Info("move executed",
		"strategy", strategy,
		"ai", session.AI.String(),
		"move", move,
		"nodes", result.Nodes,
		"winner", response.Status.WinnerString(),
	)

	return response, nil
}

// SelfPlay - plays both sides from board until the game ends. The returned positions start with board.
func (that *MoveUseCase) SelfPlay(ctx context.Context, board entity.Board, strategyName string) ([]entity.Board, entity.WinStatus, error) {
	if !board.IsStructurallyValid() {
		return nil, entity.WinStatus{}, fmt.Errorf("%w: self-play needs a reachable position", apperror.ErrInvalidBoard)
	}

	strategy, err := that.resolveStrategy(strategyName)
	if err != nil {
		return nil, entity.WinStatus{}, err
	}

	positions := []entity.Board{board}
	for !entity.IsTerminal(board) {
		if err = ctx.Err(); err != nil {
			return positions, entity.Evaluate(board), fmt.Errorf("self-play interrupted: %w", err)
		}

		turn := board.Turn()

		var result *tictactoe.Result
		if result, err = that.bestMove(ctx, strategy, board, turn); err != nil {
			return positions, entity.Evaluate(board), fmt.Errorf("failed to find move: %w", err)
		}

		board, err = tictactoe.ApplyMove(board, result.Move, turn)
		if err != nil {
			return positions, entity.Evaluate(board), fmt.Errorf("failed to apply move: %w", err)
		}

		positions = append(positions, board)
	}

	return positions, entity.Evaluate(board), nil
}

func (that *MoveUseCase) resolveStrategy(name string) (tictactoe.Strategy, error) {
	if name == "" {
		return that.strategy, nil
	}

	strategy, err := tictactoe.ParseStrategy(name)
	if err != nil {
		return "", fmt.Errorf("failed to select strategy: %w", err)
	}

	return strategy, nil
}

// bestMove - looks the board up in the cache before searching. Cache failures never fail the move.
func (that *MoveUseCase) bestMove(ctx context.Context, strategy tictactoe.Strategy, board entity.Board, ai entity.Mark) (*tictactoe.Result, error) {
	log := that.logger.With("method", "bestMove")

	key := repository.MoveKey(strategy, ai, board)

	if that.moveRepo != nil {
		cached, err := that.moveRepo.GetByKey(ctx, key)
		switch {
		case err == nil:
			log.Debug("cache hit", "key", key)
			return cached, nil
		case errors.Is(err, repository.ErrMoveNotFound):
			log.Debug("cache miss", "key", key)
		default:
			log.Error("failed to read cached move", "key", key, "error", err)
		}
	}

	result, err := that.searchers[strategy].BestMove(board, ai)
	if err != nil {
		return nil, err
	}

	if that.moveRepo != nil {
		if err = that.moveRepo.Save(ctx, key, &result); err != nil {
			log.Error("failed to cache move", "key", key, "error", err)
		}
	}

	return &result, nil
}
