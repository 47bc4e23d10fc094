package models

import "gorm.io/gorm"

// BlogPost is a platform article; only published posts are listed publicly
type BlogPost struct {
	gorm.Model
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"unique;not null"`
	Content     string `json:"content" gorm:"type:text"`
	AuthorID    uint   `json:"author_id" gorm:"index;not null"`
	CoverImage  string `json:"cover_image" gorm:"default:''"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
