package models

// User is a registered account. Email is stored lower-cased so the unique
// index behaves case-insensitively.
type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Contact      string `json:"contact"`
	PasswordHash string `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
