package api

// Request and response shapes, field-for-field with the backend contract.
// Timestamps travel as ISO-8601 strings on the wire.

// LoginRequest is the credentials payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Worker mirrors the employee record managed under /api/wim.
type Worker struct {
	ID           int64  `json:"id,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	Username     string `json:"username"`
	Password     string `json:"password,omitempty"`
	RealName     string `json:"realName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	DepartmentID int64  `json:"departmentId,omitempty"`
	Status       int    `json:"status"`
	Position     string `json:"position,omitempty"`
}

// PageWorkersRequest is the paging/filter payload for the employee list.
// Status is a pointer: nil means no status filter, a pointer to 0 keeps
// only disabled accounts. StartTime (RFC3339) keeps only workers created
// at or after that moment.
type PageWorkersRequest struct {
	PageNum      int    `json:"pageNum"`
	PageSize     int    `json:"pageSize"`
	Username     string `json:"username,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	DepartmentID int64  `json:"departmentId,omitempty"`
	Status       *int   `json:"status,omitempty"`
	Position     string `json:"position,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
}

// WorkerPage is one page of the employee directory.
type WorkerPage struct {
	Total int64    `json:"total"`
	Rows  []Worker `json:"rows"`
}

// AttendanceRecord is one sign-in/sign-out pair.
type AttendanceRecord struct {
	ID          int64  `json:"id"`
	WorkerID    int64  `json:"workerId"`
	SignInTime  string `json:"signInTime"`
	SignOutTime string `json:"signOutTime,omitempty"`
	AutoClosed  bool   `json:"autoClosed,omitempty"`
}

// MeetingRoom is a room with its current availability.
type MeetingRoom struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// LeaveType is a selectable category for leave applications.
type LeaveType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddLeaveRequest is the payload for submitting a leave application.
type AddLeaveRequest struct {
	LeaveTypeID int64  `json:"leaveTypeId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Reason      string `json:"reason"`
}

// LeaveApproval is a submitted application with its review status.
type LeaveApproval struct {
	ID            int64  `json:"id"`
	LeaveTypeID   int64  `json:"leaveTypeId"`
	LeaveTypeName string `json:"leaveTypeName,omitempty"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Reason        string `json:"reason"`
	Status        int    `json:"status"`
}
