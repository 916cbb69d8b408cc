package server

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/officehub-dev/officehub/internal/auth"
	"github.com/officehub-dev/officehub/internal/models"
)

// SeedFixture is the YAML shape of a seed file
type SeedFixture struct {
	Workers []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		RealName string `yaml:"realName"`
		Email    string `yaml:"email"`
		Position string `yaml:"position"`
	} `yaml:"workers"`
	MeetingRooms []struct {
		Name     string `yaml:"name"`
		Capacity int    `yaml:"capacity"`
		Status   string `yaml:"status"`
	} `yaml:"meetingRooms"`
	LeaveTypes []string `yaml:"leaveTypes"`
}

// defaultLeaveTypes populate an install that brings no seed file
var defaultLeaveTypes = []string{"Annual leave", "Sick leave", "Personal leave", "Marriage leave"}

// Seed populates an empty database. With a seed file the fixture wins;
// without one a default admin account (admin/123456) and the standard leave
// types are created so the console works out of the box. A database that
// already has workers is left alone.
func Seed(db *gorm.DB, seedFile string, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&models.Worker{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count workers: %w", err)
	}
	if count > 0 {
		return nil
	}

	if seedFile != "" {
		return seedFromFile(db, seedFile, log)
	}

	hash, err := auth.HashPassword("123456")
	if err != nil {
		return err
	}

	admin := models.Worker{
		Username:     "admin",
		PasswordHash: hash,
		RealName:     "Administrator",
		Position:     "Admin",
		Status:       1,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	for _, name := range defaultLeaveTypes {
		if err := db.Create(&models.LeaveType{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create leave type %q: %w", name, err)
		}
	}

	log.Info().Msg("Seeded default admin account (admin/123456) - change the password")
	return nil
}

func seedFromFile(db *gorm.DB, path string, log zerolog.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var fixture SeedFixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, w := range fixture.Workers {
		hash, err := auth.HashPassword(w.Password)
		if err != nil {
			return err
		}
		worker := models.Worker{
			Username:     w.Username,
			PasswordHash: hash,
			RealName:     w.RealName,
			Email:        w.Email,
			Position:     w.Position,
			Status:       1,
		}
		if err := db.Create(&worker).Error; err != nil {
			return fmt.Errorf("failed to seed worker %q: %w", w.Username, err)
		}
	}

	for _, r := range fixture.MeetingRooms {
		status := r.Status
		if status == "" {
			status = "free"
		}
		room := models.MeetingRoom{Name: r.Name, Capacity: r.Capacity, Status: status}
		if err := db.Create(&room).Error; err != nil {
			return fmt.Errorf("failed to seed meeting room %q: %w", r.Name, err)
		}
	}

	leaveTypes := fixture.LeaveTypes
	if len(leaveTypes) == 0 {
		leaveTypes = defaultLeaveTypes
	}
	for _, name := range leaveTypes {
		if err := db.Create(&models.LeaveType{Name: name}).Error; err != nil {
			return fmt.Errorf("failed to create leave type %q: %w", name, err)
		}
	}

	log.Info().
		Int("workers", len(fixture.Workers)).
		Int("meeting_rooms", len(fixture.MeetingRooms)).
		Msg("Seeded database from fixture")

	return nil
}
