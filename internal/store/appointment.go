package store

import (
	"context"
	"time"

	"clinic-booking-api/internal/model"
)

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, patient_id, doctor_id, date, time, disease, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Disease, a.Status,
	)
	if isUniqueViolation(err) {
		// partial unique index caught a race loser
		return ErrSlotTaken
	}
	return err
}

// SlotTaken reports whether a non-cancelled appointment already occupies the
// (doctor, date, time) slot. excludeID lets an edit skip the appointment
// being edited.
func (s *Store) SlotTaken(ctx context.Context, doctorID string, date time.Time, clock, excludeID string) (bool, error) {
	q := `SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE doctor_id = $1
		  AND date = $2
		  AND time = $3
		  AND status <> 'Cancelled'`

	args := []any{doctorID, date, clock}

	if excludeID != "" {
		q += ` AND id != $4`
		args = append(args, excludeID)
	}
	q += `)`

	var exists bool
	err := s.pool.QueryRow(ctx, q, args...).Scan(&exists)
	return exists, err
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, patient_id, doctor_id, date, time, disease, status, created_at, updated_at
		 FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Disease,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) listAppointments(ctx context.Context, where string, args ...any) ([]model.Appointment, error) {
	q := `SELECT id, patient_id, doctor_id, date, time, disease, status, created_at, updated_at
	      FROM appointments ` + where

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time,
			&a.Disease, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) AppointmentsForPatient(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `WHERE patient_id = $1 ORDER BY date, time`, patientID)
}

func (s *Store) AppointmentsForDoctor(ctx context.Context, doctorID string) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `WHERE doctor_id = $1 ORDER BY date, time`, doctorID)
}

func (s *Store) AllAppointments(ctx context.Context) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `ORDER BY date DESC, time DESC`)
}

// UpdateAppointment rewrites date/time/disease of a booked appointment.
// Completed and cancelled appointments cannot be edited.
func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET date=$1, time=$2, disease=$3, updated_at=NOW()
		 WHERE id=$4 AND status='Booked'`,
		a.Date, a.Time, a.Disease, a.ID,
	)
	if isUniqueViolation(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

// CancelAppointment soft-deletes: the row stays, status flips to Cancelled.
func (s *Store) CancelAppointment(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET status='Cancelled', updated_at=NOW() WHERE id=$1`, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
