package models

// Organization is a named group that owns linodes and has member users
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex:idx_organizations_name;not null;size:255" validate:"required,min=1,max=255"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
