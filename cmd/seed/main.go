package main

import (
	"fmt"
	"log"
	"time"

	"ravenshade/internal/availability"
	"ravenshade/internal/shared/config"
	"ravenshade/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting Ravenshade database seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("Cleaning configuration tables...")
	if err := seeder.CleanConfiguration(); err != nil {
		log.Fatalf("Failed to clean configuration: %v", err)
	}

	fmt.Println("Seeding time slots and sample availability...")
	if err := seeder.SeedTimeSlots(); err != nil {
		log.Fatalf("Failed to seed time slots: %v", err)
	}
	if err := seeder.SeedAvailability(cfg.Restaurant.DefaultDailyCapacity); err != nil {
		log.Fatalf("Failed to seed availability: %v", err)
	}

	fmt.Println("Seeding completed. Database is ready.")
}

// CleanConfiguration truncates the static configuration tables. Reservation
// data is left alone.
func (s *Seeder) CleanConfiguration() error {
	pg := s.db.GetPostgreSQL()

	if err := pg.Exec("DELETE FROM time_slots").Error; err != nil {
		return fmt.Errorf("failed to clean time_slots: %w", err)
	}
	if err := pg.Exec("DELETE FROM availability").Error; err != nil {
		return fmt.Errorf("failed to clean availability: %w", err)
	}
	return nil
}

// SeedTimeSlots inserts the default evening seating windows
func (s *Seeder) SeedTimeSlots() error {
	slots := []availability.TimeSlot{
		{TimeSlot: "17:00", MaxReservations: 8, IsActive: true},
		{TimeSlot: "17:30", MaxReservations: 8, IsActive: true},
		{TimeSlot: "18:00", MaxReservations: 10, IsActive: true},
		{TimeSlot: "18:30", MaxReservations: 10, IsActive: true},
		{TimeSlot: "19:00", MaxReservations: 10, IsActive: true},
		{TimeSlot: "19:30", MaxReservations: 10, IsActive: true},
		{TimeSlot: "20:00", MaxReservations: 8, IsActive: true},
		{TimeSlot: "20:30", MaxReservations: 8, IsActive: true},
		{TimeSlot: "21:00", MaxReservations: 6, IsActive: true},
		{TimeSlot: "21:30", MaxReservations: 4, IsActive: false},
	}

	for i := range slots {
		if err := s.db.GetPostgreSQL().Create(&slots[i]).Error; err != nil {
			return fmt.Errorf("failed to create time slot %s: %w", slots[i].TimeSlot, err)
		}
	}

	fmt.Printf("  Created %d time slots\n", len(slots))
	return nil
}

// SeedAvailability inserts a couple of sample dates: one closed for a
// private function, one with reduced capacity.
func (s *Seeder) SeedAvailability(defaultCapacity int) error {
	nextMonday := nextWeekday(time.Now(), time.Monday)

	records := []availability.Availability{
		{
			Date:              nextMonday.Format("2006-01-02"),
			TotalCapacity:     defaultCapacity,
			AvailableCapacity: 0,
			IsClosed:          true,
			Notes:             "Closed for staff training",
		},
		{
			Date:              nextMonday.AddDate(0, 0, 4).Format("2006-01-02"),
			TotalCapacity:     40,
			AvailableCapacity: 40,
			IsClosed:          false,
			Notes:             "Reduced capacity: terrace renovation",
		},
	}

	for i := range records {
		if err := s.db.GetPostgreSQL().Create(&records[i]).Error; err != nil {
			return fmt.Errorf("failed to create availability for %s: %w", records[i].Date, err)
		}
	}

	fmt.Printf("  Created %d availability records\n", len(records))
	return nil
}

func nextWeekday(from time.Time, day time.Weekday) time.Time {
	daysAhead := (int(day) - int(from.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return from.AddDate(0, 0, daysAhead)
}
