package services

import (
	portsrepo "github.com/sillicon-village/ledger-api/internal/core/ports/repositories"
	portssvc "github.com/sillicon-village/ledger-api/internal/core/ports/services"
	"github.com/sillicon-village/ledger-api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Person = NewPersonService(repos.PersonRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.PersonRepo, cfg.DefaultDailyWithdrawalLimit)
	container.Transaction = NewTransactionService(repos.AccountRepo, repos.TransactionRepo)

	return container
}
