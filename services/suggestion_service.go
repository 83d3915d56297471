package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"heartchain_server/models"
)

// DefaultSuggestionLimit caps suggestion responses when the caller sends no
// usable limit.
const DefaultSuggestionLimit = 10

// CandidateSource is the slice of the user store the suggestion pipeline
// reads from.
type CandidateSource interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context, excludeUserID string) ([]models.User, error)
}

// ScoreFunc scores candidate b for requester a. Higher is more compatible.
// The pipeline always evaluates requester-to-candidate, so implementations
// are free to be asymmetric.
type ScoreFunc func(a, b *models.Profile) float64

// Suggestion pairs a candidate's public data with its compatibility score.
type Suggestion struct {
	User          models.PublicUser `json:"user"`
	Compatibility float64           `json:"compatibility"`
}

// SuggestionService selects, scores and ranks match candidates.
type SuggestionService struct {
	Users CandidateSource
	Score ScoreFunc
}

// NewSuggestionService wires the pipeline with the default profile scorer.
func NewSuggestionService(users CandidateSource) *SuggestionService {
	return &SuggestionService{
		Users: users,
		Score: func(a, b *models.Profile) float64 { return a.CalculateCompatibility(b) },
	}
}

// SelectCandidates filters the population down to profiles eligible for the
// requester: visible, not the requester, inside the preferred age range when
// one is set, and sharing an interest when the interest preference is
// non-empty. At most limit candidates are returned; no ordering is promised.
func (ss *SuggestionService) SelectCandidates(ctx context.Context, requester *models.User, limit int) ([]models.User, error) {
	if requester.Profile == nil {
		return nil, fmt.Errorf("user profile not found for %s: %w", requester.UserID, ErrNotFound)
	}
	limit = NormalizeLimit(limit)

	population, err := ss.Users.ListUsers(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}

	prefs := requester.Preferences
	candidates := make([]models.User, 0, limit)
	for _, candidate := range population {
		if candidate.UserID == requester.UserID {
			continue
		}
		if candidate.Profile == nil || !candidate.Profile.IsVisible {
			continue
		}
		if !prefs.AgeRange.Contains(candidate.Profile.Age) {
			continue
		}
		if len(prefs.Interests) > 0 && !intersects(prefs.Interests, candidate.Profile.Interests) {
			continue
		}
		candidates = append(candidates, candidate)
		if len(candidates) == limit {
			break
		}
	}
	return candidates, nil
}

// GetSuggestions runs the full pipeline: select candidates, score each one
// requester-to-candidate, then rank descending. The sort is stable, so equal
// scores keep their selection order.
func (ss *SuggestionService) GetSuggestions(ctx context.Context, requesterID string, limit int) ([]Suggestion, error) {
	requester, err := ss.Users.GetUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	candidates, err := ss.SelectCandidates(ctx, requester, limit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		suggestions = append(suggestions, Suggestion{
			User:          candidate.PublicData(),
			Compatibility: ss.Score(requester.Profile, candidate.Profile),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Compatibility > suggestions[j].Compatibility
	})
	return suggestions, nil
}

// NormalizeLimit coerces a requested limit to a positive value, falling back
// to the default when it is zero or negative.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultSuggestionLimit
	}
	return limit
}

// intersects matches interests case-insensitively, the same way the scorer
// counts shared interests.
func intersects(preferred, candidate []string) bool {
	set := make(map[string]struct{}, len(preferred))
	for _, interest := range preferred {
		set[strings.ToLower(interest)] = struct{}{}
	}
	for _, interest := range candidate {
		if _, ok := set[strings.ToLower(interest)]; ok {
			return true
		}
	}
	return false
}
