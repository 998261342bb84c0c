// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/budget-bot/backend/config"
	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/application/usecase/expense"
	"github.com/budget-bot/backend/internal/application/usecase/limits"
	"github.com/budget-bot/backend/internal/application/usecase/report"
	"github.com/budget-bot/backend/internal/application/usecase/user"
	"github.com/budget-bot/backend/internal/infra/server/router"
	"github.com/budget-bot/backend/internal/integration/entrypoint/controller"
	"github.com/budget-bot/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-bot/backend/internal/integration/persistence"
	"github.com/budget-bot/backend/internal/integration/render"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The session store and its health probe are provided by the caller since
// the backend is configurable.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	sessions adapter.SessionStore,
	sessionHealth func() bool,
) *Injector {
	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)
	limitRepo := persistence.NewLimitRepository(db)
	userRepo := persistence.NewUserRepository(db)

	// Create report pipeline
	aggregator := report.NewAggregator(recordRepo, limitRepo)
	formatters := render.NewRegistry()
	generateUseCase := report.NewGenerateReportUseCase(aggregator, userRepo, formatters)
	dialogUseCase := report.NewDialogUseCase(sessions, generateUseCase)
	fastReportUseCase := report.NewFastReportUseCase(aggregator, userRepo)

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(recordRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(recordRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(recordRepo)

	// Create limit use cases
	setLimitUseCase := limits.NewSetLimitUseCase(limitRepo)
	getLimitsUseCase := limits.NewGetLimitsUseCase(limitRepo)

	// Create user use cases
	registerUserUseCase := user.NewRegisterUserUseCase(userRepo)
	setTimezoneUseCase := user.NewSetTimezoneUseCase(userRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, sessionHealth)

	userController := controller.NewUserController(registerUserUseCase, setTimezoneUseCase)
	expenseController := controller.NewExpenseController(addExpenseUseCase, listExpensesUseCase, deleteExpenseUseCase)
	limitController := controller.NewLimitController(setLimitUseCase, getLimitsUseCase)
	reportController := controller.NewReportController(dialogUseCase, fastReportUseCase)

	// Create middleware
	turnLock := middleware.NewTurnLock()

	// Create router
	r := router.NewRouter(healthController, userController, expenseController, limitController, reportController, turnLock)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
