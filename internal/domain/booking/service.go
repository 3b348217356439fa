package booking

import (
	"context"
	"strings"

	"bookingdesk/internal/logger"
)

// Service runs the booking lifecycle: creation by users, cancellation by
// owners and review by admins.
type Service struct {
	bookings BookingRepository
	users    UserDirectory
	policy   Policy
}

func NewService(bookings BookingRepository, users UserDirectory, policy Policy) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		policy:   policy,
	}
}

func (s *Service) Policy() Policy { return s.policy }

// Create validates in and stores a pending booking with an empty note.
func (s *Service) Create(ctx context.Context, in Proposal) (*Booking, error) {
	in.BookingID = ""
	in.UserID = strings.TrimSpace(in.UserID)
	in.Service = strings.TrimSpace(in.Service)
	if in.missingFields() {
		return nil, ErrMissingFields
	}

	userKnown := true
	if s.policy.RequireKnownUser {
		ok, err := s.users.ExistsByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		userKnown = ok
	}

	slot, err := s.policy.Admit(in, userKnown)
	if err != nil {
		logger.Debugf("booking proposal rejected user=%s date=%q time=%q: %v", in.UserID, in.Date, in.Time, err)
		return nil, err
	}

	occupants, err := s.bookings.FindAtSlot(ctx, slot, "")
	if err != nil {
		return nil, err
	}
	if _, err := s.policy.Validate(in, userKnown, occupants); err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:  in.UserID,
		Date:    slot.Date.String(),
		Time:    slot.Time.String(),
		Service: in.Service,
		Status:  StatusPending,
		Note:    "",
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Infof("booking created id=%s user=%s slot=%s %s", b.ID, b.UserID, b.Date, b.Time)
	return b, nil
}

// ListForUser returns the user's bookings ordered by date, then time.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// List returns all bookings matching filter ordered by date, then time.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Booking, error) {
	return s.bookings.List(ctx, filter)
}

// CancelByOwner deletes a booking on behalf of the user who made it.
func (s *Service) CancelByOwner(ctx context.Context, bookingID, userID string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return ErrForbidden
	}

	if _, err := s.bookings.Delete(ctx, b.ID); err != nil {
		return err
	}
	logger.Infof("booking cancelled by owner id=%s user=%s", b.ID, userID)
	return nil
}

// AdminSetStatus accepts or rejects a booking and replaces its note.
func (s *Service) AdminSetStatus(ctx context.Context, bookingID, status, note string) (*Booking, error) {
	st, err := ParseReviewStatus(status)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.Status = st
	b.Note = note
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	logger.Infof("booking reviewed id=%s status=%s", b.ID, b.Status)
	return b, nil
}

// AdminEdit moves a booking to another slot and renames its service.
// Status and note are kept.
func (s *Service) AdminEdit(ctx context.Context, bookingID, date, clock, service string) (*Booking, error) {
	slot, err := s.policy.AdmitEdit(date, clock, service)
	if err != nil {
		return nil, err
	}

	occupants, err := s.bookings.FindAtSlot(ctx, slot, bookingID)
	if err != nil {
		return nil, err
	}
	if err := CheckConflict(slot, occupants, bookingID); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.Date = slot.Date.String()
	b.Time = slot.Time.String()
	b.Service = strings.TrimSpace(service)
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	logger.Infof("booking edited id=%s slot=%s %s", b.ID, b.Date, b.Time)
	return b, nil
}

// AdminSetNote replaces the admin note, leaving the status alone.
func (s *Service) AdminSetNote(ctx context.Context, bookingID, note string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	b.Note = note
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AdminDelete removes a booking. Deleting an unknown id is not an error.
func (s *Service) AdminDelete(ctx context.Context, bookingID string) error {
	deleted, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		return err
	}
	if deleted {
		logger.Infof("booking deleted by admin id=%s", bookingID)
	}
	return nil
}
