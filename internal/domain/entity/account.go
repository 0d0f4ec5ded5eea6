// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Language is the interface language an account prefers.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSwahili Language = "sw"
)

// IsValid checks if the Language is supported.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageSwahili
}

var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// IsValidPhone reports whether s has the international phone-number shape
// accepted for accounts and profile contacts.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// NormalizeEmail trims and lower-cases an email so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account is the core identity record: login credential, contact info and role.
// Role-specific data lives in the optional profile references.
type Account struct {
	ID                uuid.UUID      `json:"id"`
	Email             string         `json:"email"`
	PasswordHash      string         `json:"-"`
	Role              Role           `json:"role"`
	PhoneNumber       string         `json:"phone_number"`
	Location          string         `json:"location"`
	Verified          bool           `json:"verified"`
	PreferredLanguage Language       `json:"preferred_language"`
	IsStaff           bool           `json:"-"`
	IsSuperuser       bool           `json:"-"`
	FarmerProfile     *FarmerProfile `json:"-"` // nil until the account onboards as a farmer
	BuyerProfile      *BuyerProfile  `json:"-"` // nil until the account onboards as a buyer
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// ValidateContact checks the free-form contact fields against their column limits.
func (a *Account) ValidateContact() error {
	if err := checkLength("email", a.Email, MaxEmailLength); err != nil {
		return err
	}

	return checkLength("location", a.Location, MaxShortTextLength)
}

// SyncPrivileges derives the staff and superuser flags from the role.
// Admins always hold both flags and guests never do; other roles keep
// whatever the account already had.
func (a *Account) SyncPrivileges() {
	switch a.Role {
	case RoleAdmin:
		a.IsStaff = true
		a.IsSuperuser = true
	case RoleGuest:
		a.IsStaff = false
		a.IsSuperuser = false
	}
}

// HasFarmerProfile reports whether a farmer profile is attached.
func (a *Account) HasFarmerProfile() bool {
	return a.FarmerProfile != nil
}

// HasBuyerProfile reports whether a buyer profile is attached.
func (a *Account) HasBuyerProfile() bool {
	return a.BuyerProfile != nil
}
