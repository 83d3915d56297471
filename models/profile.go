package models

import (
	"strings"

	"heartchain_server/utils"
)

// Profile holds the dating-facing attributes of a user.
type Profile struct {
	Age       int      `json:"age,omitempty" dynamodbav:"age,omitempty"`
	Bio       string   `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	IsVisible bool     `json:"isVisible" dynamodbav:"isVisible"`
	Interests []string `json:"interests,omitempty" dynamodbav:"interests,omitempty"`
	Photos    []string `json:"photos,omitempty" dynamodbav:"photos,omitempty"`
	Latitude  float64  `json:"latitude,omitempty" dynamodbav:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty" dynamodbav:"longitude,omitempty"`
}

// PublicProfile mirrors Profile; profiles carry no hidden fields today, the
// projection exists so controllers never hand out the stored struct directly.
type PublicProfile struct {
	Age       int      `json:"age,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	IsVisible bool     `json:"isVisible"`
	Interests []string `json:"interests,omitempty"`
	Photos    []string `json:"photos,omitempty"`
	Latitude  float64  `json:"latitude,omitempty"`
	Longitude float64  `json:"longitude,omitempty"`
}

// PublicData returns the sanitized view of the profile.
func (p *Profile) PublicData() *PublicProfile {
	if p == nil {
		return nil
	}
	return &PublicProfile{
		Age:       p.Age,
		Bio:       p.Bio,
		IsVisible: p.IsVisible,
		Interests: p.Interests,
		Photos:    p.Photos,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

// SharedInterests counts case-insensitive exact interest overlaps with other.
func (p *Profile) SharedInterests(other *Profile) int {
	if p == nil || other == nil {
		return 0
	}
	mine := make(map[string]struct{}, len(p.Interests))
	for _, interest := range p.Interests {
		mine[strings.ToLower(interest)] = struct{}{}
	}
	shared := 0
	for _, interest := range other.Interests {
		if _, ok := mine[strings.ToLower(interest)]; ok {
			shared++
		}
	}
	return shared
}

// CalculateCompatibility scores how compatible other is for the receiver.
// Higher is more compatible. The score is deterministic but not symmetric:
// the interest term is normalized by the receiver's own interest count, so
// a narrow profile scoring a broad one differs from the reverse.
func (p *Profile) CalculateCompatibility(other *Profile) float64 {
	if p == nil || other == nil {
		return 0
	}

	score := 0.0

	// Interest overlap, weighted highest.
	shared := p.SharedInterests(other)
	score += float64(shared) * 10
	if len(p.Interests) > 0 {
		score += float64(shared) / float64(len(p.Interests)) * 5
	}

	// Age proximity: full 10 points at equal age, fading to 0 at 10 years apart.
	ageGap := p.Age - other.Age
	if ageGap < 0 {
		ageGap = -ageGap
	}
	if ageGap < 10 {
		score += float64(10 - ageGap)
	}

	// Location proximity, when both profiles carry coordinates.
	if (p.Latitude != 0 || p.Longitude != 0) && (other.Latitude != 0 || other.Longitude != 0) {
		distance := utils.CalculateDistance(p.Latitude, p.Longitude, other.Latitude, other.Longitude)
		switch {
		case distance <= 5:
			score += 5
		case distance <= 25:
			score += 3
		case distance <= 100:
			score += 1
		}
	}

	return score
}
