package domain

import "context"

// Room is a physical location where program entries take place.
// swagger:model Room
type Room struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Building   string `json:"building"`
	MazemapURL string `json:"mazemap_url"`
}

// RoomRepository defines storage for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	List(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, room *Room) (changed bool, err error)
	Delete(ctx context.Context, id string) error
}

// RoomService defines admin operations for rooms.
type RoomService interface {
	ListRooms(ctx context.Context) ([]*Room, error)
	CreateRoom(ctx context.Context, room *Room) error
	UpdateRoom(ctx context.Context, room *Room) (Status, error)
	DeleteRoom(ctx context.Context, roomID string) error
}
