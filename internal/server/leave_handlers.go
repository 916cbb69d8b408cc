package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officehub-dev/officehub/internal/models"
)

// AddLeaveRequest is the payload for submitting a leave application
type AddLeaveRequest struct {
	LeaveTypeID int64  `json:"leaveTypeId" binding:"required"`
	StartTime   string `json:"startTime" binding:"required" validate:"rfc3339"`
	EndTime     string `json:"endTime" binding:"required" validate:"rfc3339"`
	Reason      string `json:"reason"`
}

// ApprovalDetail is a leave application joined with its type name
type ApprovalDetail struct {
	ID            int64     `json:"id"`
	LeaveTypeID   int64     `json:"leaveTypeId"`
	LeaveTypeName string    `json:"leaveTypeName"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Reason        string    `json:"reason"`
	Status        int       `json:"status"`
}

// addLeave files a new leave application for the caller, pending review
func (s *Server) addLeave(c *gin.Context) {
	var req AddLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "leave type, start time and end time are required")
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		fail(c, "start and end must be RFC3339 timestamps")
		return
	}

	start, _ := time.Parse(time.RFC3339, req.StartTime)
	end, _ := time.Parse(time.RFC3339, req.EndTime)
	if !end.After(start) {
		fail(c, "end time must be after start time")
		return
	}

	var leaveType models.LeaveType
	if err := s.db.Where("id = ?", req.LeaveTypeID).First(&leaveType).Error; err != nil {
		fail(c, "unknown leave type")
		return
	}

	session, _ := GetSessionData(c)
	application := models.LeaveApplication{
		WorkerID:    session.WorkerID,
		LeaveTypeID: req.LeaveTypeID,
		StartTime:   start.UTC(),
		EndTime:     end.UTC(),
		Reason:      req.Reason,
		Status:      models.LeavePending,
	}

	if err := s.db.Create(&application).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create leave application")
		fail(c, "Failed to submit leave application")
		return
	}

	s.logger.Info().
		Int64("worker_id", session.WorkerID).
		Str("type", leaveType.Name).
		Msg("Leave application submitted")

	ok(c, application)
}

// listLeaveTypes returns the selectable categories
func (s *Server) listLeaveTypes(c *gin.Context) {
	var types []models.LeaveType
	if err := s.db.Order("id ASC").Find(&types).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list leave types")
		fail(c, "Failed to load leave types")
		return
	}

	ok(c, types)
}

// listApprovals returns the caller's applications with their review status
func (s *Server) listApprovals(c *gin.Context) {
	session, _ := GetSessionData(c)

	var applications []models.LeaveApplication
	if err := s.db.Preload("LeaveType").
		Where("worker_id = ?", session.WorkerID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list leave applications")
		fail(c, "Failed to load leave approvals")
		return
	}

	details := make([]ApprovalDetail, len(applications))
	for i, a := range applications {
		details[i] = ApprovalDetail{
			ID:            a.ID,
			LeaveTypeID:   a.LeaveTypeID,
			LeaveTypeName: a.LeaveType.Name,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Reason:        a.Reason,
			Status:        a.Status,
		}
	}

	ok(c, details)
}
