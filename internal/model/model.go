package model

import "time"

const (
	RolePatient = "Patient"
	RoleDoctor  = "Doctor"
	RoleAdmin   = "Admin"
)

const (
	StatusBooked    = "Booked"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Weekdays in the order availability schedules are stored and displayed.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

type User struct {
	ID           string
	Username     string
	UserType     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Doctor struct {
	ID         string
	Email      string
	Name       string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DayWindow is one weekday of a doctor's schedule. A nil StartTime/EndTime
// pair means the doctor is unavailable that day.
type DayWindow struct {
	ID        string
	DoctorID  string
	DayName   string
	StartTime *string
	EndTime   *string
}

type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Date      time.Time
	Time      string
	Disease   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Treatment struct {
	ID            string
	AppointmentID string
	Diagnosis     string
	Prescription  string
	Notes         string
	CreatedAt     time.Time
}

type AuditEvent struct {
	ID        string
	ActorID   string
	Email     string
	Name      string
	Action    string
	CreatedAt time.Time
}
