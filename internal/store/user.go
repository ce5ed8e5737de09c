package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, usertype, email, password_hash) VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Username, u.UserType, u.Email, u.PasswordHash,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, usertype, email, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Username, &u.UserType, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, usertype, email, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.UserType, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) HasAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE usertype = 'Admin')`,
	).Scan(&exists)
	return exists, err
}

// SearchPatients lists patients, optionally filtered by a case-insensitive
// substring match on username or email.
func (s *Store) SearchPatients(ctx context.Context, query string) ([]model.User, error) {
	q := `SELECT id, username, usertype, email, password_hash, created_at, updated_at
	      FROM users WHERE usertype = 'Patient'`
	args := []any{}
	if query != "" {
		q += ` AND (username ILIKE $1 OR email ILIKE $1)`
		args = append(args, "%"+query+"%")
	}
	q += ` ORDER BY username`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.UserType, &u.Email,
			&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// DeletePatient removes a patient login. The dependency check and the delete
// run in one transaction so a booking landing in between cannot orphan rows.
func (s *Store) DeletePatient(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var referenced bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE patient_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return err
	}
	if referenced {
		return ErrHasAppointments
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND usertype = 'Patient'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
