package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/zaplanuj/terminarz/store"
)

func (d *DB) UpsertDeclaration(ctx context.Context, upsert *store.Declaration) (*store.Declaration, error) {
	fields := []string{"event_id", "user_handle", "attendance", "created_ts", "updated_ts"}
	args := []any{upsert.EventID, upsert.UserHandle, string(upsert.Attendance), upsert.CreatedTs, upsert.UpdatedTs}

	stmt := `INSERT INTO declaration (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		ON CONFLICT (event_id, user_handle) DO UPDATE SET attendance = excluded.attendance, updated_ts = excluded.updated_ts
		RETURNING id, created_ts, updated_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&upsert.ID, &upsert.CreatedTs, &upsert.UpdatedTs); err != nil {
		return nil, fmt.Errorf("failed to upsert declaration: %w", err)
	}

	return upsert, nil
}

func (d *DB) ListDeclarations(ctx context.Context, find *store.FindDeclaration) ([]*store.Declaration, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.EventID != nil {
		where, args = append(where, "event_id = ?"), append(args, *find.EventID)
	}
	if find.UserHandle != nil {
		where, args = append(where, "user_handle = ?"), append(args, *find.UserHandle)
	}
	if len(find.Attendances) > 0 {
		list := []string{}
		for _, attendance := range find.Attendances {
			list, args = append(list, "?"), append(args, string(attendance))
		}
		where = append(where, "attendance IN ("+strings.Join(list, ", ")+")")
	}

	query := `SELECT id, event_id, user_handle, attendance, created_ts, updated_ts FROM declaration WHERE ` + strings.Join(where, " AND ") + ` ORDER BY created_ts ASC`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list declarations: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Declaration, 0)
	for rows.Next() {
		declaration := &store.Declaration{}
		var attendance string
		if err := rows.Scan(&declaration.ID, &declaration.EventID, &declaration.UserHandle, &attendance, &declaration.CreatedTs, &declaration.UpdatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan declaration: %w", err)
		}
		declaration.Attendance = store.Attendance(attendance)
		list = append(list, declaration)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate declarations: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteDeclaration(ctx context.Context, delete *store.DeleteDeclaration) error {
	where, args := []string{}, []any{}

	if delete.EventID != nil {
		where, args = append(where, "event_id = ?"), append(args, *delete.EventID)
	}
	if delete.UserHandle != nil {
		where, args = append(where, "user_handle = ?"), append(args, *delete.UserHandle)
	}

	if len(where) == 0 {
		return fmt.Errorf("no condition to delete")
	}

	stmt := `DELETE FROM declaration WHERE ` + strings.Join(where, " AND ")
	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("failed to delete declaration: %w", err)
	}

	return nil
}
