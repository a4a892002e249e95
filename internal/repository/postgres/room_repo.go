package postgres

import (
	"context"
	"database/sql"

	"techtalks/internal/domain"
)

type roomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{DB: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (name, building, mazemap_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, room.Name, room.Building, room.MazemapURL).Scan(&room.ID)
}

func (r *roomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, building, mazemap_url FROM rooms ORDER BY building ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room := &domain.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Building, &room.MazemapURL); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) (bool, error) {
	query := `
		UPDATE rooms SET name = $1, building = $2, mazemap_url = $3
		WHERE id = $4
			AND (name IS DISTINCT FROM $1 OR building IS DISTINCT FROM $2 OR mazemap_url IS DISTINCT FROM $3)
	`
	result, err := r.DB.ExecContext(ctx, query, room.Name, room.Building, room.MazemapURL, room.ID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 1 {
		return true, nil
	}
	return unchangedOrMissing(ctx, r.DB, "rooms", room.ID)
}

func (r *roomRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}
