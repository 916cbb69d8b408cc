package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Worker represents an employee account. The numeric primary key is what the
// API exposes for updates and deletes; EmployeeID is the human-facing badge
// number generated on creation.
type Worker struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID   string    `json:"employeeId" gorm:"uniqueIndex;type:varchar(26)"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	RealName     string    `json:"realName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	DepartmentID int64     `json:"departmentId"`
	Status       int       `json:"status" gorm:"not null;default:1"` // 1 active, 0 disabled
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate assigns a badge number if one wasn't provided
func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.EmployeeID == "" {
		w.EmployeeID = ulid.Make().String()
	}
	return nil
}

// AttendanceRecord is one working day: a sign-in, and a sign-out once the
// worker leaves. Records still open at midnight are closed by the auto-close
// job and flagged as such.
type AttendanceRecord struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkerID    int64      `json:"workerId" gorm:"index;not null"`
	SignInTime  time.Time  `json:"signInTime" gorm:"not null"`
	SignOutTime *time.Time `json:"signOutTime,omitempty"`
	AutoClosed  bool       `json:"autoClosed" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`

	Worker Worker `json:"-" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
}

// MeetingRoom is a bookable room shown on the dashboard
type MeetingRoom struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;unique"`
	Capacity  int       `json:"capacity" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:'free'"` // free, occupied, maintenance
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// LeaveType is a selectable category for leave applications
type LeaveType struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null;unique"`
}

// Leave application review status
const (
	LeavePending  = 0
	LeaveApproved = 1
	LeaveRejected = 2
)

// LeaveApplication is a worker's request for time off
type LeaveApplication struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkerID    int64     `json:"workerId" gorm:"index;not null"`
	LeaveTypeID int64     `json:"leaveTypeId" gorm:"not null"`
	StartTime   time.Time `json:"startTime" gorm:"not null"`
	EndTime     time.Time `json:"endTime" gorm:"not null"`
	Reason      string    `json:"reason"`
	Status      int       `json:"status" gorm:"not null;default:0"` // 0 pending, 1 approved, 2 rejected
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Worker    Worker    `json:"-" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	LeaveType LeaveType `json:"-" gorm:"foreignKey:LeaveTypeID"`
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&Worker{}, &AttendanceRecord{}, &MeetingRoom{}, &LeaveType{}, &LeaveApplication{},
	}

	return db.AutoMigrate(models...)
}
