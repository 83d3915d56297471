package models

import "strings"

// NormalizeWallet lowercases a wallet address; addresses are stored and
// looked up in this form so mixed-case inputs hit the same record.
func NormalizeWallet(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// AgeRange bounds candidate ages for suggestions. A nil Min or Max means
// that side is unbounded.
type AgeRange struct {
	Min *int `json:"min,omitempty" dynamodbav:"min,omitempty"`
	Max *int `json:"max,omitempty" dynamodbav:"max,omitempty"`
}

// Contains reports whether age falls inside the range, inclusive on both ends.
func (r *AgeRange) Contains(age int) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && age < *r.Min {
		return false
	}
	if r.Max != nil && age > *r.Max {
		return false
	}
	return true
}

// Preferences drive candidate selection. An empty Interests list means no
// interest filter.
type Preferences struct {
	AgeRange  *AgeRange `json:"ageRange,omitempty" dynamodbav:"ageRange,omitempty"`
	Interests []string  `json:"interests,omitempty" dynamodbav:"interests,omitempty"`
}

// User is the identity record. Wallet address is stored lowercased and is
// unique, as is the username. The profile is embedded in the same item and
// created together with the user.
type User struct {
	UserID            string             `json:"userId" dynamodbav:"userId"`
	WalletAddress     string             `json:"-" dynamodbav:"walletAddress"`
	Username          string             `json:"username" dynamodbav:"username"`
	CreatedAt         string             `json:"createdAt" dynamodbav:"createdAt"`
	LastLogin         string             `json:"-" dynamodbav:"lastLogin,omitempty"`
	Preferences       Preferences        `json:"preferences" dynamodbav:"preferences"`
	Profile           *Profile           `json:"profile,omitempty" dynamodbav:"profile,omitempty"`
	EmergencyContacts []EmergencyContact `json:"-" dynamodbav:"emergencyContacts,omitempty"`
}

// PublicUser is the projection of a User that other users may see. Wallet
// address, preferences, login times and emergency contacts never appear here.
type PublicUser struct {
	UserID   string         `json:"userId"`
	Username string         `json:"username"`
	Profile  *PublicProfile `json:"profile,omitempty"`
}

// PublicData returns the sanitized view of the user.
func (u *User) PublicData() PublicUser {
	pub := PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
	}
	if u.Profile != nil {
		pub.Profile = u.Profile.PublicData()
	}
	return pub
}

// UsersTable is the DynamoDB table holding users with their embedded profiles.
const UsersTable = "Users"

// GSIs on the Users table for the unique lookup keys.
const (
	WalletIndex   = "wallet-index"
	UsernameIndex = "username-index"
)
