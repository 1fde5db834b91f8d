package model

import (
	"gorm.io/gorm"
)

type NewsPost struct {
	gorm.Model
	Title        string `json:"title" gorm:"type:varchar(255);not null"`
	Slug         string `json:"slug" gorm:"type:varchar(255);index"`
	Content      string `json:"content" gorm:"type:text;not null"`
	ThumbnailURL string `json:"thumbnail_url"`
	AuthorID     uint   `json:"author_id" gorm:"index;not null"`
	Published    bool   `json:"published" gorm:"default:false"`

	// İlişkiler
	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}
