package models

type User struct {
	Username  string `json:"username" gorm:"column:username;primaryKey"`
	Name      string `json:"name" gorm:"column:name;not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url"`
}

func (User) TableName() string {
	return "users"
}
