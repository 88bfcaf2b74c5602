package models

// Membership links one user to one organization. The same pair may appear more than once.
type Membership struct {
	BaseModel
	UserID int64 `json:"user_id" gorm:"not null;index"`
	OrgID  int64 `json:"org_id" gorm:"not null;index"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
