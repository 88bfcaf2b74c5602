package models

// User is identified by a unique email and belongs to organizations through memberships
type User struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,min=1,max=255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
