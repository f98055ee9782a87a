package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	// Civil date and clock times, shop-local. Stored as text so the slot
	// equality check and the unique index compare normalized values.
	AppointmentDate string `gorm:"size:10;not null;index:idx_appointments_date" json:"appointment_date"`
	StartTime       string `gorm:"size:8;not null" json:"start_time"`
	EndTime         string `gorm:"size:8;not null" json:"end_time"`

	Status      string `gorm:"size:20;default:'PENDING'" json:"status"`
	Rescheduled bool   `gorm:"default:false" json:"rescheduled"`
	BarberName  string `gorm:"size:100" json:"barber_name"`

	Services []Service `gorm:"many2many:appointment_services" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
