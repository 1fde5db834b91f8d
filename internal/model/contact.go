package model

import (
	"gorm.io/gorm"
)

type ContactSubmission struct {
	gorm.Model
	Reference  string `json:"reference" gorm:"type:varchar(64);uniqueIndex"`
	Name       string `json:"name" gorm:"type:varchar(255);not null"`
	Email      string `json:"email" gorm:"type:varchar(320);not null"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject" gorm:"type:varchar(255);not null"`
	Message    string `json:"message" gorm:"type:text;not null"`
	ReadStatus bool   `json:"read_status" gorm:"default:false"`
}
