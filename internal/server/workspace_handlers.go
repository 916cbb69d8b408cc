package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officehub-dev/officehub/internal/models"
)

// parseSignTime reads the signInTime (or signOutTime) query parameter.
// Clients send the moment as RFC3339; a missing or malformed value falls
// back to server time.
func parseSignTime(c *gin.Context) time.Time {
	raw := c.Query("signInTime")
	if raw == "" {
		raw = c.Query("signOutTime")
	}
	if raw == "" {
		return time.Now().UTC()
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Now().UTC()
	}
	return t.UTC()
}

// signIn opens an attendance record for the day. Signing in twice without
// signing out is refused.
func (s *Server) signIn(c *gin.Context) {
	session, _ := GetSessionData(c)
	at := parseSignTime(c)

	var open int64
	if err := s.db.Model(&models.AttendanceRecord{}).
		Where("worker_id = ? AND sign_out_time IS NULL", session.WorkerID).
		Count(&open).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to check open attendance records")
		fail(c, "Failed to sign in")
		return
	}
	if open > 0 {
		fail(c, "Already signed in")
		return
	}

	record := models.AttendanceRecord{
		WorkerID:   session.WorkerID,
		SignInTime: at,
	}
	if err := s.db.Create(&record).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create attendance record")
		fail(c, "Failed to sign in")
		return
	}

	s.logger.Info().Int64("worker_id", session.WorkerID).Time("at", at).Msg("Worker signed in")
	ok(c, record)
}

// signOut closes the open attendance record
func (s *Server) signOut(c *gin.Context) {
	session, _ := GetSessionData(c)
	at := parseSignTime(c)

	var record models.AttendanceRecord
	if err := s.db.Where("worker_id = ? AND sign_out_time IS NULL", session.WorkerID).
		Order("sign_in_time DESC").
		First(&record).Error; err != nil {
		fail(c, "Not signed in")
		return
	}

	if at.Before(record.SignInTime) {
		fail(c, "Sign-out time is before sign-in time")
		return
	}

	record.SignOutTime = &at
	if err := s.db.Save(&record).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to close attendance record")
		fail(c, "Failed to sign out")
		return
	}

	s.logger.Info().Int64("worker_id", session.WorkerID).Time("at", at).Msg("Worker signed out")
	ok(c, record)
}

// listRecords returns the caller's attendance history, newest first
func (s *Server) listRecords(c *gin.Context) {
	session, _ := GetSessionData(c)

	var records []models.AttendanceRecord
	if err := s.db.Where("worker_id = ?", session.WorkerID).
		Order("sign_in_time DESC").
		Find(&records).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list attendance records")
		fail(c, "Failed to load records")
		return
	}

	ok(c, records)
}

// listMeetingRooms returns every room with its current availability
func (s *Server) listMeetingRooms(c *gin.Context) {
	var rooms []models.MeetingRoom
	if err := s.db.Order("name ASC").Find(&rooms).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list meeting rooms")
		fail(c, "Failed to load meeting rooms")
		return
	}

	ok(c, rooms)
}
