package usecases

import (
	"context"

	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/logger"
)

// nopLogger discards everything; use case tests assert on behavior, not logs.
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l nopLogger) With(args ...any) logger.Interface             { return l }
func (l nopLogger) Named(name string) logger.Interface            { return l }

type fakePlanRepo struct {
	CreateFn    func(ctx context.Context, p *plan.Plan) error
	GetByIDFn   func(ctx context.Context, planID uint) (*plan.Plan, error)
	GetBySIDFn  func(ctx context.Context, sid string) (*plan.Plan, error)
	GetByNameFn func(ctx context.Context, name string) (*plan.Plan, error)
	ListFn      func(ctx context.Context) ([]*plan.Plan, error)
	UpdateFn    func(ctx context.Context, p *plan.Plan) error
	DeleteFn    func(ctx context.Context, planID uint) error
}

func (f *fakePlanRepo) Create(ctx context.Context, p *plan.Plan) error {
	return f.CreateFn(ctx, p)
}

func (f *fakePlanRepo) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	return f.GetByIDFn(ctx, planID)
}

func (f *fakePlanRepo) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	return f.GetBySIDFn(ctx, sid)
}

func (f *fakePlanRepo) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	if f.GetByNameFn == nil {
		return nil, nil
	}
	return f.GetByNameFn(ctx, name)
}

func (f *fakePlanRepo) List(ctx context.Context) ([]*plan.Plan, error) {
	return f.ListFn(ctx)
}

func (f *fakePlanRepo) Update(ctx context.Context, p *plan.Plan) error {
	return f.UpdateFn(ctx, p)
}

func (f *fakePlanRepo) Delete(ctx context.Context, planID uint) error {
	return f.DeleteFn(ctx, planID)
}
