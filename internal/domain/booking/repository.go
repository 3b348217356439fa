package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookingdesk/internal/database"
)

// Repository stores bookings with gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type bookingModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	UserID    string    `gorm:"column:user_id;size:64;not null;index"`
	SlotDate  string    `gorm:"column:slot_date;size:10;not null;uniqueIndex:idx_bookings_slot"`
	SlotTime  string    `gorm:"column:slot_time;size:5;not null;uniqueIndex:idx_bookings_slot"`
	Service   string    `gorm:"column:service;not null"`
	Status    string    `gorm:"column:status;size:16;not null;default:pending"`
	Note      string    `gorm:"column:note;type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// Migrate creates the bookings table and the one-booking-per-slot index.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&bookingModel{})
}

func toDomainBooking(m bookingModel) *Booking {
	return &Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.SlotDate,
		Time:      m.SlotTime,
		Service:   m.Service,
		Status:    Status(m.Status),
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		UserID:    b.UserID,
		SlotDate:  b.Date,
		SlotTime:  b.Time,
		Service:   b.Service,
		Status:    string(b.Status),
		Note:      b.Note,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toDomainBookings(rows []bookingModel) []Booking {
	out := make([]Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}

func (r *Repository) Create(ctx context.Context, b *Booking) error {
	m := toBookingModel(b)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("slot_date = ? AND slot_time = ?", m.SlotDate, m.SlotTime).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrSlotConflict
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return translateWriteError(err)
	}

	*b = *toDomainBooking(m)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var m bookingModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}
	return toDomainBooking(m), nil
}

func (r *Repository) FindAtSlot(ctx context.Context, slot Slot, excludeID string) ([]Booking, error) {
	q := r.db.WithContext(ctx).
		Where("slot_date = ? AND slot_time = ?", slot.Date.String(), slot.Time.String())
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find bookings at slot: %w", err)
	}
	return toDomainBookings(rows), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot_date ASC").
		Order("slot_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings of user %s: %w", userID, err)
	}
	return toDomainBookings(rows), nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if !filter.Date.IsZero() {
		q = q.Where("slot_date = ?", filter.Date.String())
	}

	var rows []bookingModel
	if err := q.Order("slot_date ASC").Order("slot_time ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return toDomainBookings(rows), nil
}

func (r *Repository) Update(ctx context.Context, b *Booking) error {
	m := toBookingModel(b)
	res := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"slot_date":  m.SlotDate,
			"slot_time":  m.SlotTime,
			"service":    m.Service,
			"status":     m.Status,
			"note":       m.Note,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return translateWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	updated, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*b = *updated
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&bookingModel{})
	if res.Error != nil {
		return false, fmt.Errorf("delete booking %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func translateWriteError(err error) error {
	if errors.Is(err, ErrSlotConflict) || database.IsUniqueViolation(err) {
		return ErrSlotConflict
	}
	return fmt.Errorf("write booking: %w", err)
}
