package booking

import "context"

// BookingRepository is the persistence port for bookings.
type BookingRepository interface {
	// Create stores b with a fresh id. A slot already held yields ErrSlotConflict.
	Create(ctx context.Context, b *Booking) error
	// GetByID returns ErrNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*Booking, error)
	FindAtSlot(ctx context.Context, slot Slot, excludeID string) ([]Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	List(ctx context.Context, filter ListFilter) ([]Booking, error)
	// Update saves every field of b. A slot already held yields ErrSlotConflict.
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) (bool, error)
}

// UserDirectory answers whether a user id resolves to a registered account.
type UserDirectory interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}
