package main

import (
	"context"
	"errors"
	"log"
	"time"

	"bookingdesk/internal/config"
	"bookingdesk/internal/database"
	"bookingdesk/internal/domain/auth"
	"bookingdesk/internal/domain/booking"
	"bookingdesk/internal/server"
)

type seedUser struct {
	name     string
	email    string
	password string
	role     auth.UserRole
}

var users = []seedUser{
	{name: "Admin", email: "admin@bookingdesk.local", password: "admin123", role: auth.RoleAdmin},
	{name: "Alia Haddad", email: "alia@example.com", password: "client123", role: auth.RoleUser},
	{name: "Omar Saleh", email: "omar@example.com", password: "client123", role: auth.RoleUser},
}

var services = []string{"Consultation", "Follow-up", "Check-up"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := server.Migrate(db); err != nil {
		log.Fatal("migrate failed: ", err)
	}

	policy, err := cfg.BookingPolicy()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	userRepo := auth.NewUserRepository(db)
	bookingService := booking.NewService(booking.NewRepository(db), userRepo, policy)

	log.Println("Creating users...")
	var clients []*auth.User
	for _, su := range users {
		u, err := ensureUser(ctx, userRepo, su, cfg.BcryptCost)
		if err != nil {
			log.Fatalf("user %s: %v", su.email, err)
		}
		log.Printf("  %s / %s (%s)", su.email, su.password, u.Role)
		if !u.IsAdmin() {
			clients = append(clients, u)
		}
	}

	log.Println("Creating bookings...")
	day := nextWeekday(time.Now())
	for i, u := range clients {
		for j, svc := range services {
			b, err := bookingService.Create(ctx, booking.Proposal{
				UserID:  u.ID,
				Date:    day.Format("2006-01-02"),
				Time:    booking.NewClock(policy.Open.Minutes()/60+i*len(services)+j, 0).String(),
				Service: svc,
			})
			if errors.Is(err, booking.ErrSlotConflict) {
				continue
			}
			if err != nil {
				log.Printf("  skipped %s for %s: %v", svc, u.Email, err)
				continue
			}
			log.Printf("  %s %s %s -> %s", b.Date, b.Time, b.Service, u.Email)
		}
		day = nextWeekday(day)
	}

	log.Println("Seed completed")
}

func ensureUser(ctx context.Context, repo *auth.UserRepository, su seedUser, cost int) (*auth.User, error) {
	existing, err := repo.GetByEmail(ctx, su.email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(su.password, cost)
	if err != nil {
		return nil, err
	}
	u := &auth.User{Name: su.name, Email: su.email, PasswordHash: hash, Role: su.role}
	if err := repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func nextWeekday(from time.Time) time.Time {
	d := from.AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
