package models

import (
	"time"

	"gorm.io/gorm"

	"inkwell-api/internal/utils"
)

// Blog represents a published blog post
type Blog struct {
	ID       string   `gorm:"primaryKey;column:id"`
	AuthorID string   `gorm:"column:author_id;not null;index:idx_blogs_author_id"`
	Title    string   `gorm:"column:title;size:200;not null"`
	Content  string   `gorm:"column:content;type:text;not null"`
	LikedBy  []string `gorm:"column:liked_by;type:jsonb;serializer:json;default:'[]'"`

	CreatedAt int64 `gorm:"column:created_at;autoCreateTime:false;not null;index:idx_blogs_created_at"`
	UpdatedAt int64 `gorm:"column:updated_at;autoCreateTime:false;not null"`
}

// TableName specifies the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}

// BeforeCreate hook for Blog
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if b.ID == "" {
		b.ID = utils.GenerateBlogID()
	}
	if b.LikedBy == nil {
		b.LikedBy = []string{}
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = now
	}
	if b.UpdatedAt == 0 {
		b.UpdatedAt = now
	}
	return nil
}

// BeforeUpdate hook for Blog
func (b *Blog) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}
