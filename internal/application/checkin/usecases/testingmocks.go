package usecases

import (
	"context"
	"time"

	"gymcore/internal/domain/checkin"
	"gymcore/internal/domain/member"
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

type fakeCheckInRepo struct {
	CreateFn func(ctx context.Context, c *checkin.CheckIn) error
	ListFn   func(ctx context.Context, memberID *uint) ([]*checkin.CheckIn, error)
}

func (f *fakeCheckInRepo) Create(ctx context.Context, c *checkin.CheckIn) error {
	return f.CreateFn(ctx, c)
}

func (f *fakeCheckInRepo) List(ctx context.Context, memberID *uint) ([]*checkin.CheckIn, error) {
	return f.ListFn(ctx, memberID)
}

type fakeMemberRepo struct {
	GetByDNIFn func(ctx context.Context, dni string) (*member.Member, error)
	GetBySIDFn func(ctx context.Context, sid string) (*member.Member, error)
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeMemberRepo) GetByID(ctx context.Context, memberID uint) (*member.Member, error) {
	return nil, nil
}

func (f *fakeMemberRepo) GetBySID(ctx context.Context, sid string) (*member.Member, error) {
	return f.GetBySIDFn(ctx, sid)
}

func (f *fakeMemberRepo) GetByDNI(ctx context.Context, dni string) (*member.Member, error) {
	return f.GetByDNIFn(ctx, dni)
}

func (f *fakeMemberRepo) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	return false, nil
}

func (f *fakeMemberRepo) List(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error) {
	return nil, 0, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeMemberRepo) Delete(ctx context.Context, memberID uint) error { return nil }

func (f *fakeMemberRepo) MarkLapsedExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
