package models

// Enquiry is a lead-capture submission from a prospective student.
type Enquiry struct {
	BaseModel
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Contact   string `gorm:"not null" json:"contact"`
	Email     string `gorm:"index;not null" json:"email"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
