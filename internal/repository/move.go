package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches search results. A result only depends on the strategy, the AI mark and the board,
// so those three make up the key.
type MoveRepository interface {
	Save(ctx context.Context, key string, result *tictactoe.Result) error
	GetByKey(ctx context.Context, key string) (*tictactoe.Result, error)
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

// MoveKey - builds the cache key, e.g. "move:alphabeta:O:X????????".
func MoveKey(strategy tictactoe.Strategy, ai entity.Mark, board entity.Board) string {
	return fmt.Sprintf("move:%s:%s:%s", strategy, ai, strings.Join(board.Strings(), ""))
}

func (that *dbMove) Save(ctx context.Context, key string, result *tictactoe.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.client.Set(ctx, key, resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, key string) (*tictactoe.Result, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move by key: %w", err)
	}

	var result tictactoe.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &result, nil
}
