package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

// CompleteWithTreatment records the treatment and flips the appointment to
// Completed in one transaction. If the insert fails the status does not
// change, and the status update only succeeds from Booked.
func (s *Store) CompleteWithTreatment(ctx context.Context, t *model.Treatment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE appointments SET status='Completed', updated_at=NOW()
		 WHERE id=$1 AND status='Booked'`, t.AppointmentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO treatments (id, appointment_id, diagnosis, prescription, notes)
		 VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.AppointmentID, t.Diagnosis, t.Prescription, t.Notes,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) TreatmentByAppointment(ctx context.Context, appointmentID string) (*model.Treatment, error) {
	t := &model.Treatment{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, appointment_id, diagnosis, prescription, notes, created_at
		 FROM treatments WHERE appointment_id = $1`, appointmentID,
	).Scan(&t.ID, &t.AppointmentID, &t.Diagnosis, &t.Prescription, &t.Notes, &t.CreatedAt)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
