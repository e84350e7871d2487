package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists member records.
type Repository interface {
	Create(ctx context.Context, m Member) error
	FindByPhone(ctx context.Context, phone string) (Member, error)
	FindByCredentials(ctx context.Context, phone, password string) (Member, error)
	Update(ctx context.Context, phone string, patch Patch) error
}

const uniqueViolation = "23505"

// PostgresRepository implements Repository against member_table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed member repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new member record. The unique constraint on phone is the
// authoritative duplicate signal; a violation maps to ErrPhoneExists so
// concurrent registrations racing past the service pre-check still conflict
// cleanly.
func (r *PostgresRepository) Create(ctx context.Context, m Member) error {
	_, err := r.db.Exec(ctx, `INSERT INTO member_table (name, phone, password) VALUES ($1, $2, $3)`,
		m.Name, m.Phone, m.Password)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrPhoneExists
		}
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// FindByPhone fetches the full record for a phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (Member, error) {
	row := r.db.QueryRow(ctx, `SELECT name, phone, password FROM member_table WHERE phone = $1`, phone)
	var m Member
	if err := row.Scan(&m.Name, &m.Phone, &m.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("find member: %w", err)
	}
	return m, nil
}

// FindByCredentials matches phone and password in a single query so the
// caller cannot tell an unknown phone from a wrong password.
func (r *PostgresRepository) FindByCredentials(ctx context.Context, phone, password string) (Member, error) {
	row := r.db.QueryRow(ctx, `SELECT name, phone, password FROM member_table WHERE phone = $1 AND password = $2`,
		phone, password)
	var m Member
	if err := row.Scan(&m.Name, &m.Phone, &m.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("match credentials: %w", err)
	}
	return m, nil
}

// Update applies the non-empty patch fields, keyed by the original phone.
// A zero row count is not an error: the endpoint acknowledges updates to
// unknown phones. Changing the phone to one already registered trips the
// unique constraint and maps to ErrPhoneExists.
func (r *PostgresRepository) Update(ctx context.Context, phone string, patch Patch) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.Name != "" {
		args = append(args, patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Phone != "" {
		args = append(args, patch.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if patch.Password != "" {
		args = append(args, patch.Password)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}
	args = append(args, phone)

	query := fmt.Sprintf("UPDATE member_table SET %s WHERE phone = $%d", strings.Join(sets, ", "), len(args))
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrPhoneExists
		}
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}
