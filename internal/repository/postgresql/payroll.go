package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.user_id, p.gross_amount, p.disbursement_date,
	p.deductions, p.custom_deductions, p.total_deductions, p.net_salary,
	p.created_at, p.updated_at,
	u.name AS user_name, u.rank AS user_rank, u.registration_number AS user_registration_number`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var deductionsRaw, customRaw []byte

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.GrossAmount, &rec.DisbursementDate,
		&deductionsRaw, &customRaw, &rec.TotalDeductions, &rec.NetSalary,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName, &rec.UserRank, &rec.UserRegistrationNumber,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	if err := json.Unmarshal(deductionsRaw, &rec.Deductions); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to decode deductions: %w", err)
	}
	if err := json.Unmarshal(customRaw, &rec.CustomDeductions); err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to decode custom deductions: %w", err)
	}

	return rec, nil
}

func encodeDeductions(rec payroll.PayrollRecord) (deductions, custom []byte, err error) {
	fixed := rec.Deductions
	if fixed == nil {
		fixed = payroll.Deductions{}
	}
	deductions, err = json.Marshal(fixed)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode deductions: %w", err)
	}

	slots := rec.CustomDeductions
	if slots == nil {
		slots = []payroll.CustomDeduction{}
	}
	custom, err = json.Marshal(slots)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode custom deductions: %w", err)
	}

	return deductions, custom, nil
}

func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	deductions, custom, err := encodeDeductions(record)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	query := `
		WITH inserted AS (
			INSERT INTO payrolls (user_id, gross_amount, disbursement_date, deductions, custom_deductions, total_deductions, net_salary)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + payrollColumns + `
		FROM inserted p
		JOIN users u ON p.user_id = u.id
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query,
		record.UserID, record.GrossAmount, record.DisbursementDate,
		deductions, custom, record.TotalDeductions, record.NetSalary,
	))
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	deductions, custom, err := encodeDeductions(record)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	query := `
		WITH updated AS (
			UPDATE payrolls
			SET user_id = $2, gross_amount = $3, disbursement_date = $4,
				deductions = $5, custom_deductions = $6,
				total_deductions = $7, net_salary = $8, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + payrollColumns + `
		FROM updated p
		JOIN users u ON p.user_id = u.id
	`

	rec, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID, record.UserID, record.GrossAmount, record.DisbursementDate,
		deductions, custom, record.TotalDeductions, record.NetSalary,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payrolls WHERE id = $1 RETURNING id`

	var deletedID int64
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payrolls p
		JOIN users u ON p.user_id = u.id
	`
	var args []interface{}
	if filter.UserID != nil {
		baseQuery += " WHERE p.user_id = $1"
		args = append(args, *filter.UserID)
	}

	// Count query
	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT `+payrollColumns+`
		%s
		ORDER BY p.disbursement_date DESC, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) ListByUser(ctx context.Context, userID int64) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1
		ORDER BY p.disbursement_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records for user: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
