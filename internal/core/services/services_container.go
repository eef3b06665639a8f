package services

import (
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finhaus/home_finance_app/internal/core/ports/services"
	"github.com/finhaus/home_finance_app/internal/platform/config"
)

// NewServiceContainer wires all application services with their repository
// dependencies. notifier may be nil when alerting is not configured.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, notifier FailureNotifier) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(cfg, userService),
		User:        userService,
		BankAccount: NewBankAccountService(repos.BankAccountRepo, repos.BalanceRepo),
		Balance:     NewBalanceService(repos.BalanceRepo),
		FixedEntry:  NewFixedEntryService(repos.FixedEntryRepo, repos.CategoryRepo),
		Installment: NewInstallmentService(repos.InstallmentRepo, repos.CategoryRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Forecast:    NewForecastService(repos.BalanceRepo, repos.FixedEntryRepo, repos.InstallmentRepo),
		Backup:      NewBackupService(cfg, repos.BackupRepo, notifier),
	}
}
