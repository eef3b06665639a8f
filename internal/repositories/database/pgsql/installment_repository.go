package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finhaus/home_finance_app/internal/apperrors"
	"github.com/finhaus/home_finance_app/internal/core/domain"
	portsrepo "github.com/finhaus/home_finance_app/internal/core/ports/repositories"
	"github.com/finhaus/home_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInstallmentRepository struct {
	db *pgxpool.Pool
}

func newPgxInstallmentRepository(db *pgxpool.Pool) portsrepo.InstallmentRepository {
	return &PgxInstallmentRepository{db: db}
}

// Ensure PgxInstallmentRepository implements portsrepo.InstallmentRepository
var _ portsrepo.InstallmentRepository = (*PgxInstallmentRepository)(nil)

func toModelInstallment(d domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID:     d.InstallmentID,
		Description:       d.Description,
		CategoryID:        d.CategoryID,
		TotalAmount:       d.TotalAmount,
		NumberOfPayments:  d.NumberOfPayments,
		PaymentsCompleted: d.PaymentsCompleted,
		MonthlyAmount:     d.MonthlyAmount,
		FirstPaymentDate:  d.FirstPaymentDate,
		DayOfMonth:        d.DayOfMonth,
		Status:            string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID:     m.InstallmentID,
		Description:       m.Description,
		CategoryID:        m.CategoryID,
		TotalAmount:       m.TotalAmount,
		NumberOfPayments:  m.NumberOfPayments,
		PaymentsCompleted: m.PaymentsCompleted,
		MonthlyAmount:     m.MonthlyAmount,
		FirstPaymentDate:  m.FirstPaymentDate,
		DayOfMonth:        m.DayOfMonth,
		Status:            domain.InstallmentStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanInstallmentRow(row pgx.Row, m *models.Installment) error {
	return row.Scan(
		&m.InstallmentID,
		&m.Description,
		&m.CategoryID,
		&m.TotalAmount,
		&m.NumberOfPayments,
		&m.PaymentsCompleted,
		&m.MonthlyAmount,
		&m.FirstPaymentDate,
		&m.DayOfMonth,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
}

const installmentColumns = `installment_id, description, category_id, total_amount, number_of_payments, payments_completed, monthly_amount, first_payment_date, day_of_month, status, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxInstallmentRepository) SaveInstallment(ctx context.Context, installment domain.Installment) error {
	m := toModelInstallment(installment)
	query := `
        INSERT INTO installments (installment_id, description, category_id, total_amount, number_of_payments, payments_completed, monthly_amount, first_payment_date, day_of_month, status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		m.InstallmentID,
		m.Description,
		m.CategoryID,
		m.TotalAmount,
		m.NumberOfPayments,
		m.PaymentsCompleted,
		m.MonthlyAmount,
		m.FirstPaymentDate,
		m.DayOfMonth,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save installment: %w", err)
	}
	return nil
}

func (r *PgxInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE installment_id = $1;`
	var m models.Installment
	if err := scanInstallmentRow(r.db.QueryRow(ctx, query, installmentID), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find installment %s: %w", installmentID, err)
	}
	installment := toDomainInstallment(m)
	return &installment, nil
}

func (r *PgxInstallmentRepository) ListInstallments(ctx context.Context, status string, limit int, offset int) ([]domain.Installment, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + installmentColumns + `
        FROM installments
        WHERE ($1 = '' OR status = $1)
        ORDER BY first_payment_date ASC, created_at ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	installments := []domain.Installment{}
	for rows.Next() {
		var m models.Installment
		if err := scanInstallmentRow(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		installments = append(installments, toDomainInstallment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", rows.Err())
	}
	return installments, nil
}

func (r *PgxInstallmentRepository) UpdateInstallment(ctx context.Context, installment domain.Installment) error {
	m := toModelInstallment(installment)
	query := `
        UPDATE installments
        SET description = $2, category_id = $3, payments_completed = $4, day_of_month = $5, status = $6, last_updated_at = $7, last_updated_by = $8
        WHERE installment_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.InstallmentID,
		m.Description,
		m.CategoryID,
		m.PaymentsCompleted,
		m.DayOfMonth,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update installment %s: %w", installment.InstallmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInstallmentRepository) DeleteInstallment(ctx context.Context, installmentID string) error {
	// Payment rows go with the plan via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM installments WHERE installment_id = $1;`, installmentID)
	if err != nil {
		return fmt.Errorf("failed to delete installment %s: %w", installmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInstallmentRepository) SavePayment(ctx context.Context, payment domain.InstallmentPayment) error {
	query := `
        INSERT INTO installment_payments (payment_id, installment_id, amount, payment_number, paid_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		payment.PaymentID,
		payment.InstallmentID,
		payment.Amount,
		payment.PaymentNumber,
		payment.PaidAt,
		payment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save installment payment: %w", err)
	}
	return nil
}

func (r *PgxInstallmentRepository) ListPayments(ctx context.Context, installmentID string) ([]domain.InstallmentPayment, error) {
	query := `
        SELECT payment_id, installment_id, amount, payment_number, paid_at, created_by
        FROM installment_payments
        WHERE installment_id = $1
        ORDER BY payment_number ASC;
    `
	rows, err := r.db.Query(ctx, query, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installment payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.InstallmentPayment{}
	for rows.Next() {
		var m models.InstallmentPayment
		if err := rows.Scan(&m.PaymentID, &m.InstallmentID, &m.Amount, &m.PaymentNumber, &m.PaidAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan installment payment row: %w", err)
		}
		payments = append(payments, domain.InstallmentPayment{
			PaymentID:     m.PaymentID,
			InstallmentID: m.InstallmentID,
			Amount:        m.Amount,
			PaymentNumber: m.PaymentNumber,
			PaidAt:        m.PaidAt,
			CreatedBy:     m.CreatedBy,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating installment payment rows: %w", rows.Err())
	}
	return payments, nil
}
