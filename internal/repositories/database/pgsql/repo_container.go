package pgsql

import (
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		BalanceRepo:     newPgxBalanceRepository(dbPool),
		FixedEntryRepo:  newPgxFixedEntryRepository(dbPool),
		InstallmentRepo: newPgxInstallmentRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		BackupRepo:      newPgxBackupRepository(dbPool),
	}
}
