package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The booking workflow only reads ID and LoyaltyPoints;
// the rest belongs to the identity boundary.
type User struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	firstName     string
	lastName      string
	phone         Phone
	isAdmin       bool
	loyaltyPoints int
	isActive      bool
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName string, phone Phone, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		// New accounts are regular clients with no points yet;
		// loyalty points are credited externally when appointments complete.
		isAdmin:       false,
		loyaltyPoints: 0,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, firstName, lastName string,
	phone Phone,
	isAdmin bool,
	loyaltyPoints int,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		firstName:     firstName,
		lastName:      lastName,
		phone:         phone,
		isAdmin:       isAdmin,
		loyaltyPoints: loyaltyPoints,
		isActive:      isActive,
		lastLogin:     lastLogin,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Phone() Phone          { return u.phone }
func (u *User) IsAdmin() bool         { return u.isAdmin }
func (u *User) LoyaltyPoints() int    { return u.loyaltyPoints }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
