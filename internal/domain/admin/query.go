package admin

import (
	"context"
	"strings"

	"bookingdesk/internal/domain/auth"
	"bookingdesk/internal/domain/booking"
)

// BookingLister is the read side of the booking store.
type BookingLister interface {
	List(ctx context.Context, filter booking.ListFilter) ([]booking.Booking, error)
}

// UserLookup resolves a set of user ids in one call.
type UserLookup interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*auth.User, error)
}

// UserSummary is the user part of an admin booking row. ID is empty when
// the booking points at a user that no longer exists.
type UserSummary struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var unknownUser = UserSummary{Name: "-", Email: "-"}

// BookingView is a booking joined with its user.
type BookingView struct {
	booking.Booking
	User UserSummary `json:"user"`
}

// Query builds the admin booking list.
type Query struct {
	bookings BookingLister
	users    UserLookup
}

func NewQuery(bookings BookingLister, users UserLookup) *Query {
	return &Query{bookings: bookings, users: users}
}

// Run returns bookings ordered by date and time. dateFilter, when not
// empty, must be a valid YYYY-MM-DD date. search is matched
// case-insensitively against user name, user email and service.
func (q *Query) Run(ctx context.Context, dateFilter, search string) ([]BookingView, error) {
	var filter booking.ListFilter
	if strings.TrimSpace(dateFilter) != "" {
		d, err := booking.ParseDate(dateFilter)
		if err != nil {
			return nil, booking.ErrInvalidDate
		}
		filter.Date = d
	}

	rows, err := q.bookings.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	users, err := q.users.GetByIDs(ctx, distinctUserIDs(rows))
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		v := BookingView{Booking: b, User: summarize(users[b.UserID])}
		if needle != "" && !v.matches(needle) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (v BookingView) matches(needle string) bool {
	for _, field := range []string{v.User.Name, v.User.Email, v.Service} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func summarize(u *auth.User) UserSummary {
	if u == nil {
		return unknownUser
	}
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func distinctUserIDs(rows []booking.Booking) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, b := range rows {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}
	return ids
}
