package models

import "time"

// StatusCheck records a client ping against the API.
type StatusCheck struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	ClientName string    `json:"client_name" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}
