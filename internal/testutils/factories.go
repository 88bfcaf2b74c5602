package testutils

import (
	"fmt"
	"sync/atomic"

	"org-demo-backend/internal/database/models"

	"gorm.io/gorm"
)

var sequence atomic.Int64

func nextSeq() int64 {
	return sequence.Add(1)
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// Create returns an organization with a unique name
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{Name: fmt.Sprintf("Test Organization %d", nextSeq())}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create returns a user with a unique email
func (f *UserFactory) Create() *models.User {
	return &models.User{Email: fmt.Sprintf("user%d@example.com", nextSeq())}
}

func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// LinodeFactory provides methods to create test Linode data
type LinodeFactory struct{}

// Create returns a linode with a unique name owned by orgID
func (f *LinodeFactory) Create(orgID int64) *models.Linode {
	return &models.Linode{Name: fmt.Sprintf("linode-%d", nextSeq()), OrgID: orgID}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Linode       *LinodeFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: &OrganizationFactory{},
		User:         &UserFactory{},
		Linode:       &LinodeFactory{},
	}
}

// Persist writes models built by the factories straight through GORM
func Persist(db *gorm.DB, values ...interface{}) error {
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			return err
		}
	}
	return nil
}
