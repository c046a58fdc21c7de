package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, registration_number, rank, role, profile_photo, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RegistrationNumber,
		&u.Rank, &u.Role, &u.ProfilePhoto, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, password_hash, registration_number, rank, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	u, err := scanUser(q.QueryRow(ctx, query,
		newUser.Name, newUser.Email, newUser.PasswordHash,
		newUser.RegistrationNumber, newUser.Rank, newUser.Role,
	))
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		if strings.Contains(err.Error(), "users_registration_number_key") {
			return user.User{}, user.ErrRegistrationNumberExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Password != nil {
		// Already bcrypt-hashed by the service; never a plaintext password.
		setParts = append(setParts, fmt.Sprintf("password_hash = $%d", argIdx))
		args = append(args, *req.Password)
		argIdx++
	}
	if req.RegistrationNumber != nil {
		setParts = append(setParts, fmt.Sprintf("registration_number = $%d", argIdx))
		args = append(args, *req.RegistrationNumber)
		argIdx++
	}
	if req.Rank != nil {
		setParts = append(setParts, fmt.Sprintf("rank = $%d", argIdx))
		args = append(args, *req.Rank)
		argIdx++
	}
	if req.Role != nil {
		setParts = append(setParts, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $1
		RETURNING `+userColumns, strings.Join(setParts, ", "))

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if strings.Contains(err.Error(), "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		if strings.Contains(err.Error(), "users_registration_number_key") {
			return user.User{}, user.ErrRegistrationNumberExists
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

func (r *userRepository) UpdateProfilePhoto(ctx context.Context, id int64, path string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET profile_photo = $2, updated_at = NOW() WHERE id = $1 RETURNING id`

	var updatedID int64
	if err := q.QueryRow(ctx, query, id, path).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update profile photo: %w", err)
	}

	return nil
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
