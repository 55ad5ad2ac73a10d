package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		LegalActionRepo: newPgxLegalActionRepository(dbPool),
		FileRepo:        newPgxFileRepository(dbPool),
		SmsRepo:         newPgxSmsRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
