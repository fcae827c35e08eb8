package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const quizSessionKeyPrefix = "quiz:session:"

// QuizSessionRepository 自适应测验会话只保存在 Redis 中，过期即丢弃
type QuizSessionRepository struct {
	Redis *redis.Client
}

func NewQuizSessionRepository(rdb *redis.Client) *QuizSessionRepository {
	return &QuizSessionRepository{Redis: rdb}
}

func quizSessionKey(id string) string {
	return quizSessionKeyPrefix + id
}

func (r *QuizSessionRepository) Save(ctx context.Context, state *model.AbilityState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.Redis.Set(ctx, quizSessionKey(state.SessionID), data, ttl).Err()
}

func (r *QuizSessionRepository) Get(ctx context.Context, id string) (*model.AbilityState, error) {
	val, err := r.Redis.Get(ctx, quizSessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var state model.AbilityState
	if err := json.Unmarshal(val, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *QuizSessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.Redis.Del(ctx, quizSessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return util.ErrSessionNotFound
	}
	return nil
}
