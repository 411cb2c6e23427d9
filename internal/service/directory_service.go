package service

import (
	"context"
	"strings"

	"github.com/vedran77/skillswap/internal/domain"
	"github.com/vedran77/skillswap/internal/repository"
)

// Filter holds the three independent directory criteria. Empty criteria
// match everything; active criteria combine as a logical AND, so applying
// them in any order yields the same result set.
type Filter struct {
	Search       string
	Skill        string
	Availability string
}

func (f Filter) Matches(u *domain.User) bool {
	if f.Search != "" && !matchesSearch(u, f.Search) {
		return false
	}
	if f.Skill != "" && !u.HasSkill(f.Skill) {
		return false
	}
	if f.Availability != "" && !u.IsAvailable(f.Availability) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the name
// and every offered and wanted skill label.
func matchesSearch(u *domain.User, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(u.Name), term) {
		return true
	}
	for _, s := range u.SkillsOffered {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	for _, s := range u.SkillsWanted {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// DirectoryService produces the visible subset of the member roster.
type DirectoryService struct {
	userRepo repository.UserRepository
}

func NewDirectoryService(userRepo repository.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

type BrowseResult struct {
	Members []domain.User `json:"members"`
	Count   int           `json:"count"`
	Total   int           `json:"total"`
}

func (s *DirectoryService) Browse(ctx context.Context, filter Filter) (*BrowseResult, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.User, 0, len(users))
	for _, u := range users {
		if filter.Matches(&u) {
			members = append(members, u)
		}
	}

	return &BrowseResult{
		Members: members,
		Count:   len(members),
		Total:   len(users),
	}, nil
}
