package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	checkinUC "gymcore/internal/application/checkin/usecases"
	memberUC "gymcore/internal/application/member/usecases"
	paymentUC "gymcore/internal/application/payment/usecases"
	planUC "gymcore/internal/application/plan/usecases"
	"gymcore/internal/infrastructure/cache"
	"gymcore/internal/infrastructure/config"
	"gymcore/internal/infrastructure/payment"
	"gymcore/internal/infrastructure/repository"
	checkinhandlers "gymcore/internal/interfaces/http/handlers/checkin"
	memberhandlers "gymcore/internal/interfaces/http/handlers/member"
	paymenthandlers "gymcore/internal/interfaces/http/handlers/payment"
	planhandlers "gymcore/internal/interfaces/http/handlers/plan"
	"gymcore/internal/interfaces/http/middleware"
	"gymcore/internal/interfaces/http/routes"
	"gymcore/internal/shared/biztime"
	"gymcore/internal/shared/db"
	"gymcore/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	memberHandler  *memberhandlers.MemberHandler
	planHandler    *planhandlers.PlanHandler
	paymentHandler *paymenthandlers.PaymentHandler
	checkInHandler *checkinhandlers.CheckInHandler
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case the front-desk lookup cache degrades to straight database reads.
func NewRouter(gormDB *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	clock := biztime.System()
	txManager := db.NewTransactionManager(gormDB)

	memberRepo := repository.NewMemberRepository(gormDB, log)
	planRepo := repository.NewPlanRepository(gormDB, log)
	periodRepo := repository.NewMembershipPeriodRepository(gormDB, log)
	paymentRepo := repository.NewPaymentRepository(gormDB, log)
	checkInRepo := repository.NewCheckInRepository(gormDB, log)

	cacheTTL := time.Duration(cfg.Membership.CheckInCacheTTLSeconds) * time.Second
	checkInCache := cache.NewCheckInInfoStore(redisClient, cacheTTL)

	gw := payment.NewManualGateway(log)

	memberHandler := memberhandlers.NewMemberHandler(
		memberUC.NewCreateMemberUseCase(memberRepo, planRepo, clock, log),
		memberUC.NewGetMemberUseCase(memberRepo, log),
		memberUC.NewListMembersUseCase(memberRepo, log),
		memberUC.NewUpdateMemberUseCase(memberRepo, clock, log),
		memberUC.NewDeleteMemberUseCase(memberRepo, log),
		memberUC.NewRenewMembershipUseCase(memberRepo, planRepo, checkInCache, cfg.Membership.DefaultRenewalMonths, clock, log),
		memberUC.NewCheckInInfoUseCase(memberRepo, planRepo, checkInCache, clock, log),
	)

	planHandler := planhandlers.NewPlanHandler(
		planUC.NewCreatePlanUseCase(planRepo, clock, log),
		planUC.NewGetPlanUseCase(planRepo, log),
		planUC.NewListPlansUseCase(planRepo, log),
		planUC.NewUpdatePlanUseCase(planRepo, clock, log),
		planUC.NewDeletePlanUseCase(planRepo, log),
	)

	paymentHandler := paymenthandlers.NewPaymentHandler(
		paymentUC.NewCreatePaymentUseCase(paymentRepo, memberRepo, planRepo, gw, clock, log),
		paymentUC.NewConfirmPaymentUseCase(paymentRepo, memberRepo, planRepo, periodRepo, txManager, checkInCache, clock, log),
		paymentUC.NewFailPaymentUseCase(paymentRepo, clock, log),
		paymentUC.NewListPaymentsUseCase(paymentRepo, memberRepo, log),
	)

	checkInHandler := checkinhandlers.NewCheckInHandler(
		checkinUC.NewCheckInMemberUseCase(checkInRepo, memberRepo, clock, log),
		checkinUC.NewListCheckInsUseCase(checkInRepo, memberRepo, log),
	)

	return &Router{
		engine:         engine,
		memberHandler:  memberHandler,
		planHandler:    planHandler,
		paymentHandler: paymentHandler,
		checkInHandler: checkInHandler,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupMemberRoutes(r.engine, &routes.MemberRouteConfig{MemberHandler: r.memberHandler})
	routes.SetupPlanRoutes(r.engine, &routes.PlanRouteConfig{PlanHandler: r.planHandler})
	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{PaymentHandler: r.paymentHandler})
	routes.SetupCheckInRoutes(r.engine, &routes.CheckInRouteConfig{CheckInHandler: r.checkInHandler})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
