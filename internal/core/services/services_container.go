package services

import (
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil when Redis is not configured; the dashboard then recomputes on every read.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache *redis.Client, smsSender SmsSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.PaymentRepo, repos.CustomerRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.TransactionRepo)
	container.LegalAction = NewLegalActionService(repos.LegalActionRepo, repos.CustomerRepo)
	container.File = NewFileService(repos.FileRepo, repos.CustomerRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleAuth = NewGoogleAuthService(cfg)
	container.Reporting = NewReportingService(repos.TransactionRepo, repos.PaymentRepo, repos.CustomerRepo, cache, cfg.DashboardCacheTTL)

	if smsSender == nil {
		smsSender = &LogSmsSender{}
	}
	container.Sms = NewSmsService(repos.SmsRepo, repos.CustomerRepo, container.Transaction, smsSender)

	return container
}
