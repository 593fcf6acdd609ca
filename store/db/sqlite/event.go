package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zaplanuj/terminarz/store"
)

func (d *DB) CreateEvent(ctx context.Context, create *store.Event) (*store.Event, error) {
	fields := []string{"uid", "code", "channel_handle", "name", "owner_handle", "start_ts", "remind_ts", "created_ts", "updated_ts"}
	args := []any{create.UID, create.Code, create.ChannelHandle, create.Name, create.OwnerHandle, create.StartTs, create.RemindTs, create.CreatedTs, create.UpdatedTs}

	stmt := `INSERT INTO event (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return create, nil
}

func (d *DB) ListEvents(ctx context.Context, find *store.FindEvent) ([]*store.Event, error) {
	where, args := []string{"1 = 1"}, []any{}

	if find.ID != nil {
		where, args = append(where, "id = ?"), append(args, *find.ID)
	}
	if find.UID != nil {
		where, args = append(where, "uid = ?"), append(args, *find.UID)
	}
	if find.Code != nil {
		where, args = append(where, "code = ?"), append(args, *find.Code)
	}
	if find.ChannelHandle != nil {
		where, args = append(where, "channel_handle = ?"), append(args, *find.ChannelHandle)
	}
	if find.OwnerHandle != nil {
		where, args = append(where, "owner_handle = ?"), append(args, *find.OwnerHandle)
	}
	if find.StartAfter != nil {
		where, args = append(where, "start_ts > ?"), append(args, *find.StartAfter)
	}
	if find.StartBefore != nil {
		where, args = append(where, "start_ts <= ?"), append(args, *find.StartBefore)
	}

	query := `SELECT id, uid, code, channel_handle, name, owner_handle, start_ts, remind_ts, remind_sent_ts, start_sent_ts, created_ts, updated_ts FROM event WHERE ` + strings.Join(where, " AND ") + ` ORDER BY start_ts ASC`
	if find.Limit != nil {
		query += fmt.Sprintf(" LIMIT %d", *find.Limit)
	}
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Event, 0)
	for rows.Next() {
		event := &store.Event{}
		if err := rows.Scan(
			&event.ID, &event.UID, &event.Code, &event.ChannelHandle, &event.Name, &event.OwnerHandle,
			&event.StartTs, &event.RemindTs, &event.RemindSentTs, &event.StartSentTs, &event.CreatedTs, &event.UpdatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		list = append(list, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return list, nil
}

func (d *DB) UpdateEvent(ctx context.Context, update *store.UpdateEvent) (*store.Event, error) {
	set, args := []string{}, []any{}

	if update.Name != nil {
		set, args = append(set, "name = ?"), append(args, *update.Name)
	}
	if update.StartTs != nil {
		set, args = append(set, "start_ts = ?"), append(args, *update.StartTs)
	}
	if update.RemindTs != nil {
		set, args = append(set, "remind_ts = ?"), append(args, *update.RemindTs)
		set = append(set, "remind_sent_ts = NULL")
	} else if update.ClearRemind {
		set = append(set, "remind_ts = NULL", "remind_sent_ts = NULL")
	}
	if update.RemindSentTs != nil {
		set, args = append(set, "remind_sent_ts = ?"), append(args, *update.RemindSentTs)
	}
	if update.StartSentTs != nil {
		set, args = append(set, "start_sent_ts = ?"), append(args, *update.StartSentTs)
	}
	if update.UpdatedTs != nil {
		set, args = append(set, "updated_ts = ?"), append(args, *update.UpdatedTs)
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, update.ID)
	stmt := `UPDATE event SET ` + strings.Join(set, ", ") + ` WHERE id = ? RETURNING id, uid, code, channel_handle, name, owner_handle, start_ts, remind_ts, remind_sent_ts, start_sent_ts, created_ts, updated_ts`
	event := &store.Event{}
	err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&event.ID, &event.UID, &event.Code, &event.ChannelHandle, &event.Name, &event.OwnerHandle,
		&event.StartTs, &event.RemindTs, &event.RemindSentTs, &event.StartSentTs, &event.CreatedTs, &event.UpdatedTs,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event not found")
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (d *DB) DeleteEvent(ctx context.Context, delete *store.DeleteEvent) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM declaration WHERE event_id = ?`, delete.ID); err != nil {
		return fmt.Errorf("failed to delete declarations: %w", err)
	}
	result, err := d.db.ExecContext(ctx, `DELETE FROM event WHERE id = ?`, delete.ID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event not found")
	}

	return nil
}

func (d *DB) NextEventNumber(ctx context.Context, channelHandle string) (int64, error) {
	stmt := `INSERT INTO event_counter (channel_handle, value)
		VALUES (?, 1)
		ON CONFLICT (channel_handle) DO UPDATE SET value = event_counter.value + 1
		RETURNING value`
	var value int64
	if err := d.db.QueryRowContext(ctx, stmt, channelHandle).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance event counter: %w", err)
	}
	return value, nil
}
