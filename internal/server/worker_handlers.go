package server

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officehub-dev/officehub/internal/auth"
	"github.com/officehub-dev/officehub/internal/models"
)

// PageWorkersRequest carries paging and optional filters for the directory.
// Status is a pointer so that filtering on 0 (disabled accounts) is
// distinguishable from no filter; StartTime keeps only workers created at
// or after that moment.
type PageWorkersRequest struct {
	PageNum      int    `json:"pageNum"`
	PageSize     int    `json:"pageSize"`
	Username     string `json:"username"`
	EmployeeID   string `json:"employeeId"`
	DepartmentID int64  `json:"departmentId"`
	Status       *int   `json:"status"`
	Position     string `json:"position"`
	StartTime    string `json:"startTime" validate:"omitempty,rfc3339"`
}

// WorkerPage is one page of the directory plus the unfiltered total
type WorkerPage struct {
	Total int64           `json:"total"`
	Rows  []models.Worker `json:"rows"`
}

// UpdateWorkerRequest is a partial update keyed by the numeric id. A
// non-empty password is re-hashed; empty fields are left untouched.
type UpdateWorkerRequest struct {
	ID           int64  `json:"id" binding:"required"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	RealName     string `json:"realName"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	DepartmentID int64  `json:"departmentId"`
	Status       int    `json:"status"`
	Position     string `json:"position"`
}

// pageWorkers returns one page of the employee directory
func (s *Server) pageWorkers(c *gin.Context) {
	var req PageWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid paging request")
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		fail(c, "startTime must be an RFC3339 timestamp")
		return
	}

	if req.PageNum < 1 {
		req.PageNum = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}

	query := s.db.Model(&models.Worker{})
	if req.Username != "" {
		query = query.Where("username LIKE ?", "%"+req.Username+"%")
	}
	if req.EmployeeID != "" {
		query = query.Where("employee_id = ?", req.EmployeeID)
	}
	if req.DepartmentID != 0 {
		query = query.Where("department_id = ?", req.DepartmentID)
	}
	if req.Position != "" {
		query = query.Where("position = ?", req.Position)
	}
	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if req.StartTime != "" {
		since, _ := time.Parse(time.RFC3339, req.StartTime)
		query = query.Where("created_at >= ?", since)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to count workers")
		fail(c, "Failed to load employees")
		return
	}

	var rows []models.Worker
	if err := query.Order("id ASC").
		Offset((req.PageNum - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&rows).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to page workers")
		fail(c, "Failed to load employees")
		return
	}

	ok(c, WorkerPage{Total: total, Rows: rows})
}

// updateWorker applies a partial update to an employee record
func (s *Server) updateWorker(c *gin.Context) {
	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, "invalid update request")
		return
	}
	if err := s.validator.Struct(&req); err != nil {
		fail(c, "invalid email address")
		return
	}

	var worker models.Worker
	if err := s.db.Where("id = ?", req.ID).First(&worker).Error; err != nil {
		fail(c, "Employee not found")
		return
	}

	if req.Username != "" {
		worker.Username = req.Username
	}
	if req.RealName != "" {
		worker.RealName = req.RealName
	}
	if req.Email != "" {
		worker.Email = req.Email
	}
	if req.Phone != "" {
		worker.Phone = req.Phone
	}
	if req.DepartmentID != 0 {
		worker.DepartmentID = req.DepartmentID
	}
	if req.Position != "" {
		worker.Position = req.Position
	}
	worker.Status = req.Status

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to hash password")
			fail(c, "Failed to update employee")
			return
		}
		worker.PasswordHash = hash
	}

	if err := s.db.Save(&worker).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to update worker")
		fail(c, "Failed to update employee")
		return
	}

	session, _ := GetSessionData(c)
	s.logger.Info().
		Int64("worker_id", worker.ID).
		Str("updated_by", session.Username).
		Msg("Worker updated")

	ok(c, worker)
}

// deleteWorkers removes employees in bulk. The path parameter is a JSON
// array of numeric ids, e.g. DELETE /api/wim/delete/workers/[1,2,3].
func (s *Server) deleteWorkers(c *gin.Context) {
	raw := c.Param("ids")

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || len(ids) == 0 {
		fail(c, "invalid id list")
		return
	}

	session, _ := GetSessionData(c)
	for _, id := range ids {
		if id == session.WorkerID {
			fail(c, "Cannot delete yourself")
			return
		}
	}

	result := s.db.Where("id IN ?", ids).Delete(&models.Worker{})
	if result.Error != nil {
		s.logger.Error().Err(result.Error).Msg("Failed to delete workers")
		fail(c, "Failed to delete employees")
		return
	}

	s.logger.Info().
		Int64("deleted", result.RowsAffected).
		Str("deleted_by", session.Username).
		Msg("Workers deleted")

	ok(c, result.RowsAffected)
}
