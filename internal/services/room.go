package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techtalks/internal/domain"
)

type roomService struct {
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

func NewRoomService(roomRepo domain.RoomRepository, timeout time.Duration) domain.RoomService {
	return &roomService{roomRepo: roomRepo, contextTimeout: timeout}
}

func validateRoom(room *domain.Room) error {
	room.Name = strings.TrimSpace(room.Name)
	room.Building = strings.TrimSpace(room.Building)
	room.MazemapURL = strings.TrimSpace(room.MazemapURL)
	if room.Name == "" || room.Building == "" {
		return fmt.Errorf("%w: room name and building are required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return rooms, nil
}

func (s *roomService) CreateRoom(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateRoom(room); err != nil {
		return err
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) (domain.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateRoom(room); err != nil {
		return domain.StatusFailed, err
	}
	changed, err := s.roomRepo.Update(ctx, room)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("update room: %w", err)
	}
	return domain.WriteResult(changed), nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
