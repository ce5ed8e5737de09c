package store

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

// CreateDoctor provisions a doctor in one transaction: the login, the
// profile, and one unavailable window per weekday. Either all of it persists
// or none of it does.
func (s *Store) CreateDoctor(ctx context.Context, login *model.User, d *model.Doctor) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO users (id, username, usertype, email, password_hash) VALUES ($1,$2,$3,$4,$5)`,
		login.ID, login.Username, model.RoleDoctor, login.Email, login.PasswordHash,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO doctors (id, email, name, department) VALUES ($1,$2,$3,$4)`,
		d.ID, d.Email, d.Name, d.Department,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}

	for _, day := range model.Weekdays {
		_, err = tx.Exec(ctx,
			`INSERT INTO doctor_availability (id, doctor_id, day_name, start_time, end_time)
			 VALUES ($1,$2,$3,NULL,NULL)`,
			uuid.New().String(), d.ID, day,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) DoctorByID(ctx context.Context, id string) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, department, created_at, updated_at
		 FROM doctors WHERE id = $1`, id,
	).Scan(&d.ID, &d.Email, &d.Name, &d.Department, &d.CreatedAt, &d.UpdatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) DoctorByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	d := &model.Doctor{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, department, created_at, updated_at
		 FROM doctors WHERE email = $1`, email,
	).Scan(&d.ID, &d.Email, &d.Name, &d.Department, &d.CreatedAt, &d.UpdatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) ListDoctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, email, name, department, created_at, updated_at
		 FROM doctors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Doctor
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.Email, &d.Name, &d.Department,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDoctor changes the profile and keeps the login row in sync.
// newPasswordHash is optional; empty leaves the password alone.
func (s *Store) UpdateDoctor(ctx context.Context, d *model.Doctor, newPasswordHash string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var oldEmail string
	err = tx.QueryRow(ctx, `SELECT email FROM doctors WHERE id = $1`, d.ID).Scan(&oldEmail)
	if notFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE doctors SET email=$1, name=$2, department=$3, updated_at=NOW() WHERE id=$4`,
		d.Email, d.Name, d.Department, d.ID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}

	if newPasswordHash != "" {
		_, err = tx.Exec(ctx,
			`UPDATE users SET username=$1, email=$2, password_hash=$3, updated_at=NOW()
			 WHERE email=$4 AND usertype='Doctor'`,
			d.Name, d.Email, newPasswordHash, oldEmail,
		)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE users SET username=$1, email=$2, updated_at=NOW()
			 WHERE email=$3 AND usertype='Doctor'`,
			d.Name, d.Email, oldEmail,
		)
	}
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteDoctor removes the availability rows, the login and the profile in
// one transaction. Refused while any appointment references the doctor.
func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var email string
	err = tx.QueryRow(ctx, `SELECT email FROM doctors WHERE id = $1`, id).Scan(&email)
	if notFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var referenced bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE doctor_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return err
	}
	if referenced {
		return ErrHasAppointments
	}

	if _, err = tx.Exec(ctx, `DELETE FROM doctor_availability WHERE doctor_id = $1`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM users WHERE email = $1 AND usertype = 'Doctor'`, email); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Stats returns the dashboard counts.
func (s *Store) Stats(ctx context.Context) (doctors, patients, appointments int, err error) {
	err = s.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM doctors),
		   (SELECT COUNT(*) FROM users WHERE usertype = 'Patient'),
		   (SELECT COUNT(*) FROM appointments)`,
	).Scan(&doctors, &patients, &appointments)
	return
}
