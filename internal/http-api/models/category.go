package models

type Category struct {
	Slug        string `json:"slug" gorm:"column:slug;primaryKey"`
	Description string `json:"description" gorm:"column:description;not null"`
}

func (Category) TableName() string {
	return "categories"
}
