package payroll

import "context"

// PayrollRepository defines data access for payroll records. Scoping a guest
// to their own records is the service layer's concern, not the repository's.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id int64) (PayrollRecord, error)
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	Delete(ctx context.Context, id int64) error

	// List is the paginated global view, optionally filtered to one user,
	// sorted by disbursement_date DESC then created_at DESC. Returns the
	// total row count for the filter alongside the page.
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)

	// ListByUser is the unbounded single-user history, newest first.
	ListByUser(ctx context.Context, userID int64) ([]PayrollRecord, error)
}
