package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository over the same connection or transaction
type Repositories struct {
	Organizations OrganizationRepositoryInterface
	Users         UserRepositoryInterface
	Linodes       LinodeRepositoryInterface
	Memberships   MembershipRepositoryInterface
}

// NewRepositories binds all repositories to db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Organizations: NewOrganizationRepository(db),
		Users:         NewUserRepository(db),
		Linodes:       NewLinodeRepository(db),
		Memberships:   NewMembershipRepository(db),
	}
}

// Transactor starts database transactions
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction runs fn inside a transaction. Returning an error, or panicking,
// rolls back every write fn made.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
