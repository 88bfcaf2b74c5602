package models

// Linode is a device owned by exactly one organization
type Linode struct {
	BaseModel
	Name  string `json:"name" gorm:"uniqueIndex:idx_linodes_name;not null;size:255" validate:"required,min=1,max=255"`
	OrgID int64  `json:"org_id" gorm:"not null;index"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Linode
func (Linode) TableName() string {
	return "linodes"
}
