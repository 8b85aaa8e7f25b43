package models

import "time"

type Review struct {
	ReviewID     int64     `json:"review_id" gorm:"column:review_id;primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"column:title;not null"`
	Category     string    `json:"category" gorm:"column:category;not null"`
	Designer     string    `json:"designer" gorm:"column:designer"`
	Owner        string    `json:"owner" gorm:"column:owner;not null"`
	ReviewBody   string    `json:"review_body" gorm:"column:review_body;not null"`
	ReviewImgURL string    `json:"review_img_url" gorm:"column:review_img_url"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	Votes        int       `json:"votes" gorm:"column:votes"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewSummary is a review row with its derived comment count.
// comment_count is never stored; it comes from the reviews/comments join.
type ReviewSummary struct {
	Review       `gorm:"embedded"`
	CommentCount int `json:"comment_count" gorm:"column:comment_count"`
}
