package repository

import (
	"context"
	"encoding/json"
	"errors"
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"mindset_backend/pkg/logger"
	"mindset_backend/pkg/monitoring"
	"mindset_backend/pkg/tracing"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AnyRevision 表示不校验版本
const AnyRevision int64 = -1

type revisionKey struct{}

// WithExpectedRevision 在 ctx 中携带 If-Match 版本，Update 会据此校验
func WithExpectedRevision(ctx context.Context, rev int64) context.Context {
	return context.WithValue(ctx, revisionKey{}, rev)
}

func expectedRevision(ctx context.Context) int64 {
	if rev, ok := ctx.Value(revisionKey{}).(int64); ok {
		return rev
	}
	return AnyRevision
}

// StateRepository 读写整个 UserState。所有修改都经过 Update，
// 在进程内串行执行 读-改-写，因此同一进程只有一个写者。
type StateRepository struct {
	Store KeyValueStore
	Key   string
	Now   func() time.Time

	mu sync.Mutex
}

func NewStateRepository(store KeyValueStore, key string) *StateRepository {
	return &StateRepository{
		Store: store,
		Key:   key,
		Now:   time.Now,
	}
}

// Load 读取状态。读取或解析失败时记录日志并返回默认状态，不返回错误。
func (r *StateRepository) Load(ctx context.Context) *model.UserState {
	ctx, span := tracing.Tracer.Start(ctx, "state.load")
	defer span.End()

	now := r.Now()
	raw, err := r.Store.GetItem(ctx, r.Key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Log.Error("Failed to read state, falling back to defaults", zap.Error(err))
			monitoring.StateLoadFailures.Inc()
			span.RecordError(err)
		}
		return model.NewUserState(now)
	}

	state := model.NewUserState(now)
	if err := json.Unmarshal(raw, state); err != nil {
		logger.Log.Error("Failed to parse state, falling back to defaults", zap.Error(err))
		monitoring.StateLoadFailures.Inc()
		span.RecordError(err)
		return model.NewUserState(now)
	}
	state.Backfill(now)

	span.SetAttributes(attribute.Int64("state.revision", state.Revision))
	return state
}

// Save 序列化并写回整个状态。写入成功后 revision 才加一，
// 失败时 state 的 revision 与 updatedAt 保持原值。
func (r *StateRepository) Save(ctx context.Context, state *model.UserState) error {
	ctx, span := tracing.Tracer.Start(ctx, "state.save")
	defer span.End()

	prevRevision, prevUpdatedAt := state.Revision, state.UpdatedAt
	state.Revision++
	state.UpdatedAt = r.Now()

	raw, err := json.Marshal(state)
	if err == nil {
		err = r.Store.SetItem(ctx, r.Key, raw)
	}
	if err != nil {
		state.Revision, state.UpdatedAt = prevRevision, prevUpdatedAt
		logger.Log.Error("Failed to save state", zap.Error(err), zap.Int64("revision", prevRevision+1))
		monitoring.StateSaveFailures.Inc()
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int64("state.revision", state.Revision))
	return nil
}

// Update 执行一次 读-改-写。fn 返回错误时不保存；保存失败只记录日志，
// 调用方拿到的状态可能领先于持久化的状态。
func (r *StateRepository) Update(ctx context.Context, fn func(*model.UserState) error) (*model.UserState, error) {
	return r.UpdateAt(ctx, expectedRevision(ctx), fn)
}

// UpdateAt 与 Update 相同，但要求当前 revision 等于 expected
func (r *StateRepository) UpdateAt(ctx context.Context, expected int64, fn func(*model.UserState) error) (*model.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.Load(ctx)
	if expected != AnyRevision && state.Revision != expected {
		return nil, util.ErrRevisionMismatch
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	_ = r.Save(ctx, state)
	return state, nil
}

// Replace 用 next 覆盖整个状态（导入），revision 延续当前值
func (r *StateRepository) Replace(ctx context.Context, next *model.UserState) (*model.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.Load(ctx)
	next.Backfill(r.Now())
	next.Revision = current.Revision
	if err := r.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Reset 删除整个存储键，不可恢复。ctx 携带 If-Match 版本时先校验。
func (r *StateRepository) Reset(ctx context.Context) error {
	return r.ResetAt(ctx, expectedRevision(ctx))
}

// ResetAt 与 Reset 相同，但要求当前 revision 等于 expected，校验与删除在同一把锁内
func (r *StateRepository) ResetAt(ctx context.Context, expected int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if expected != AnyRevision && r.Load(ctx).Revision != expected {
		return util.ErrRevisionMismatch
	}
	if err := r.Store.RemoveItem(ctx, r.Key); err != nil {
		logger.Log.Error("Failed to reset state", zap.Error(err))
		return err
	}
	logger.Log.Info("State wiped")
	return nil
}
