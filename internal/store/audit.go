package store

import (
	"context"

	"clinic-booking-api/internal/model"
)

func (s *Store) AppendAudit(ctx context.Context, ev *model.AuditEvent) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO audit_events (id, actor_id, email, name, action) VALUES ($1,$2,$3,$4,$5)`,
		ev.ID, ev.ActorID, ev.Email, ev.Name, ev.Action,
	)
	return err
}

func (s *Store) ListAudit(ctx context.Context) ([]model.AuditEvent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, actor_id, email, name, action, created_at
		 FROM audit_events ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AuditEvent
	for rows.Next() {
		var ev model.AuditEvent
		if err := rows.Scan(&ev.ID, &ev.ActorID, &ev.Email, &ev.Name, &ev.Action, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
