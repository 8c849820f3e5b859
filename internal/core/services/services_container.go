package services

import (
	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos *portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.TxManager, options...),
		Transaction: NewTransactionService(repos.AccountRepo, repos.TxManager, options...),
		Reporting:   NewReportingService(repos.AccountRepo, repos.TxManager, options...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
)
