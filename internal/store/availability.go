package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

// weekday sort order for schedules
const weekOrder = `CASE day_name
	WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
	ELSE 7 END`

func (s *Store) WeekSchedule(ctx context.Context, doctorID string) ([]model.DayWindow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, doctor_id, day_name, start_time, end_time
		 FROM doctor_availability WHERE doctor_id = $1
		 ORDER BY `+weekOrder, doctorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DayWindow
	for rows.Next() {
		var w model.DayWindow
		if err := rows.Scan(&w.ID, &w.DoctorID, &w.DayName, &w.StartTime, &w.EndTime); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// DayWindow fetches the availability row for one weekday.
func (s *Store) DayWindow(ctx context.Context, doctorID, dayName string) (*model.DayWindow, error) {
	w := &model.DayWindow{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, doctor_id, day_name, start_time, end_time
		 FROM doctor_availability WHERE doctor_id = $1 AND day_name = $2`,
		doctorID, dayName,
	).Scan(&w.ID, &w.DoctorID, &w.DayName, &w.StartTime, &w.EndTime)
	if notFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ReplaceWeek writes all seven windows in one transaction.
func (s *Store) ReplaceWeek(ctx context.Context, doctorID string, windows []model.DayWindow) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, w := range windows {
		_, err = tx.Exec(ctx,
			`UPDATE doctor_availability SET start_time=$1, end_time=$2
			 WHERE doctor_id=$3 AND day_name=$4`,
			w.StartTime, w.EndTime, doctorID, w.DayName,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
