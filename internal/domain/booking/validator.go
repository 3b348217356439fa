package booking

import "strings"

// Policy holds the configurable parts of booking validation.
type Policy struct {
	// RequireKnownUser rejects proposals whose user id does not resolve.
	RequireKnownUser bool
	// RevalidateOnEdit applies the weekday and working-hours rules to admin edits too.
	RevalidateOnEdit bool
	// Open and Close bound the working day, both inclusive.
	Open  Clock
	Close Clock
}

func DefaultPolicy() Policy {
	return Policy{
		RequireKnownUser: true,
		Open:             NewClock(9, 0),
		Close:            NewClock(17, 0),
	}
}

// Proposal is a raw booking request as received from a caller.
type Proposal struct {
	UserID  string
	Date    string
	Time    string
	Service string
	// BookingID is set when an existing booking is being moved; it never
	// conflicts with itself.
	BookingID string
}

func (p Proposal) missingFields() bool {
	return blank(p.UserID) || blank(p.Date) || blank(p.Time) || blank(p.Service)
}

// Validate decides a proposal against a set of existing bookings. Rules run in
// a fixed order and the first failure is returned. userKnown is ignored
// unless RequireKnownUser is set.
func (p Policy) Validate(in Proposal, userKnown bool, existing []Booking) (Slot, error) {
	slot, err := p.Admit(in, userKnown)
	if err != nil {
		return Slot{}, err
	}
	if err := CheckConflict(slot, existing, in.BookingID); err != nil {
		return Slot{}, err
	}
	return slot, nil
}

// Admit runs every rule except the slot conflict check and returns the parsed slot.
func (p Policy) Admit(in Proposal, userKnown bool) (Slot, error) {
	if in.missingFields() {
		return Slot{}, ErrMissingFields
	}
	if p.RequireKnownUser && !userKnown {
		return Slot{}, ErrUnknownUser
	}
	return p.parseSlot(in.Date, in.Time, true)
}

// AdmitEdit parses an admin edit. Weekday and working hours are only checked
// when RevalidateOnEdit is set.
func (p Policy) AdmitEdit(date, clock, service string) (Slot, error) {
	if blank(date) || blank(clock) || blank(service) {
		return Slot{}, ErrMissingFields
	}
	return p.parseSlot(date, clock, p.RevalidateOnEdit)
}

func (p Policy) parseSlot(date, clock string, calendar bool) (Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Slot{}, ErrInvalidDate
	}
	if calendar && d.IsWeekend() {
		return Slot{}, ErrWeekendNotAllowed
	}

	t, err := ParseClock(clock)
	if err != nil {
		return Slot{}, ErrInvalidTime
	}
	if calendar && !p.withinHours(t) {
		return Slot{}, ErrOutsideWorkingHours
	}

	return Slot{Date: d, Time: t}, nil
}

func (p Policy) withinHours(t Clock) bool {
	m := t.Minutes()
	return m >= p.Open.Minutes() && m <= p.Close.Minutes()
}

// CheckConflict fails when any booking other than excludeID holds slot.
func CheckConflict(slot Slot, existing []Booking, excludeID string) error {
	for _, b := range existing {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if slot.Matches(b) {
			return ErrSlotConflict
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
