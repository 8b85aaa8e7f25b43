package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ReviewID  int64     `json:"review_id" gorm:"column:review_id;not null;index"`
	Author    string    `json:"author" gorm:"column:author;not null"`
	Body      string    `json:"body" gorm:"column:body;not null"`
	Votes     int       `json:"votes" gorm:"column:votes"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
