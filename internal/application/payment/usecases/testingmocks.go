package usecases

import (
	"context"
	"time"

	"gymcore/internal/application/payment/gateway"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/membership"
	"gymcore/internal/domain/payment"
	paymentvo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/logger"
)

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

// passthroughTx runs the function directly; use case tests exercise the
// orchestration, repository integration tests cover real transactions.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePaymentRepo struct {
	CreateFn                 func(ctx context.Context, p *payment.Payment) error
	GetByIDFn                func(ctx context.Context, paymentID uint) (*payment.Payment, error)
	GetBySIDFn               func(ctx context.Context, sid string) (*payment.Payment, error)
	GetByProviderReferenceFn func(ctx context.Context, ref string) (*payment.Payment, error)
	ListFn                   func(ctx context.Context, memberID *uint) ([]*payment.Payment, error)
	UpdateFn                 func(ctx context.Context, p *payment.Payment) error
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	return f.CreateFn(ctx, p)
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, paymentID uint) (*payment.Payment, error) {
	return f.GetByIDFn(ctx, paymentID)
}

func (f *fakePaymentRepo) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	return f.GetBySIDFn(ctx, sid)
}

func (f *fakePaymentRepo) GetByProviderReference(ctx context.Context, ref string) (*payment.Payment, error) {
	return f.GetByProviderReferenceFn(ctx, ref)
}

func (f *fakePaymentRepo) List(ctx context.Context, memberID *uint) ([]*payment.Payment, error) {
	return f.ListFn(ctx, memberID)
}

func (f *fakePaymentRepo) Update(ctx context.Context, p *payment.Payment) error {
	return f.UpdateFn(ctx, p)
}

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

type fakePeriodRepo struct {
	CreateFn               func(ctx context.Context, p *membership.Period) error
	GetByIDFn              func(ctx context.Context, periodID uint) (*membership.Period, error)
	GetCurrentByMemberIDFn func(ctx context.Context, memberID uint) (*membership.Period, error)
	ListByMemberIDFn       func(ctx context.Context, memberID uint) ([]*membership.Period, error)
	UpdateFn               func(ctx context.Context, p *membership.Period) error
}

func (f *fakePeriodRepo) Create(ctx context.Context, p *membership.Period) error {
	return f.CreateFn(ctx, p)
}

func (f *fakePeriodRepo) GetByID(ctx context.Context, periodID uint) (*membership.Period, error) {
	return f.GetByIDFn(ctx, periodID)
}

func (f *fakePeriodRepo) GetCurrentByMemberID(ctx context.Context, memberID uint) (*membership.Period, error) {
	return f.GetCurrentByMemberIDFn(ctx, memberID)
}

func (f *fakePeriodRepo) ListByMemberID(ctx context.Context, memberID uint) ([]*membership.Period, error) {
	return f.ListByMemberIDFn(ctx, memberID)
}

func (f *fakePeriodRepo) Update(ctx context.Context, p *membership.Period) error {
	return f.UpdateFn(ctx, p)
}

type fakeGateway struct {
	InitiateFn func(ctx context.Context, memberSID string, amount paymentvo.Money) (*gateway.Initiation, error)
}

func (f *fakeGateway) Initiate(ctx context.Context, memberSID string, amount paymentvo.Money) (*gateway.Initiation, error) {
	return f.InitiateFn(ctx, memberSID, amount)
}
