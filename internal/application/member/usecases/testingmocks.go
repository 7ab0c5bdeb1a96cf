package usecases

import (
	"context"
	"time"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
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

type fakeMemberRepo struct {
	CreateFn           func(ctx context.Context, m *member.Member) error
	GetByIDFn          func(ctx context.Context, memberID uint) (*member.Member, error)
	GetBySIDFn         func(ctx context.Context, sid string) (*member.Member, error)
	GetByDNIFn         func(ctx context.Context, dni string) (*member.Member, error)
	ExistsByDNIFn      func(ctx context.Context, dni string) (bool, error)
	ListFn             func(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error)
	UpdateFn           func(ctx context.Context, m *member.Member) error
	DeleteFn           func(ctx context.Context, memberID uint) error
	MarkLapsedExpireFn func(ctx context.Context, now time.Time) (int64, error)
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error {
	return f.CreateFn(ctx, m)
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, memberID uint) (*member.Member, error) {
	return f.GetByIDFn(ctx, memberID)
}

func (f *fakeMemberRepo) GetBySID(ctx context.Context, sid string) (*member.Member, error) {
	return f.GetBySIDFn(ctx, sid)
}

func (f *fakeMemberRepo) GetByDNI(ctx context.Context, dni string) (*member.Member, error) {
	return f.GetByDNIFn(ctx, dni)
}

func (f *fakeMemberRepo) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	return f.ExistsByDNIFn(ctx, dni)
}

func (f *fakeMemberRepo) List(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error {
	return f.UpdateFn(ctx, m)
}

func (f *fakeMemberRepo) Delete(ctx context.Context, memberID uint) error {
	return f.DeleteFn(ctx, memberID)
}

func (f *fakeMemberRepo) MarkLapsedExpired(ctx context.Context, now time.Time) (int64, error) {
	return f.MarkLapsedExpireFn(ctx, now)
}

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

type fakeCheckInCache struct {
	GetFn        func(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error)
	SetFn        func(ctx context.Context, dni string, info *dto.CheckInInfoDTO) error
	InvalidateFn func(ctx context.Context, dni string) error
}

func (f *fakeCheckInCache) Get(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error) {
	return f.GetFn(ctx, dni)
}

func (f *fakeCheckInCache) Set(ctx context.Context, dni string, info *dto.CheckInInfoDTO) error {
	return f.SetFn(ctx, dni, info)
}

func (f *fakeCheckInCache) Invalidate(ctx context.Context, dni string) error {
	if f.InvalidateFn == nil {
		return nil
	}
	return f.InvalidateFn(ctx, dni)
}
