//go:build unit || e2e

package builder

import (
	"time"

	"institut-booking/internal/domain/user"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         string
	IsAdmin       bool
	LoyaltyPoints int
	IsActive      bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            uuid.New(),
		Email:         "claire.dupont@example.com",
		PasswordHash:  "hashed_password",
		FirstName:     "Claire",
		LastName:      "Dupont",
		Phone:         "0612345678",
		IsAdmin:       false,
		LoyaltyPoints: 0,
		IsActive:      true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, u.FirstName, u.LastName, phone, time.Now()), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		IsAdmin:       u.IsAdmin,
		LoyaltyPoints: u.LoyaltyPoints,
		IsActive:      u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.IsAdmin = true
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
