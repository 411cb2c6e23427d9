package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
)

// Seed loads the demo roster into the repository. The member set mirrors
// the product's mock directory data.
func Seed(ctx context.Context, repo *UserRepo) error {
	for _, u := range seedUsers() {
		if err := repo.Create(ctx, u); err != nil {
			return fmt.Errorf("seeding roster: %w", err)
		}
	}
	return nil
}

func seedUsers() []*domain.User {
	now := time.Now()
	return []*domain.User{
		{
			ID:            uuid.MustParse("6f1b1a52-0c6e-4d1f-9a3b-6a1f0e6f2a01"),
			Name:          "Sarah Chen",
			Email:         "sarah.chen@example.com",
			Location:      "San Francisco, CA",
			SkillsOffered: []string{"React", "TypeScript", "UI/UX Design"},
			SkillsWanted:  []string{"Photography", "Spanish"},
			Availability:  []string{"Weekends"},
			Rating:        4.8,
			ReviewCount:   24,
			IsPublic:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.MustParse("6f1b1a52-0c6e-4d1f-9a3b-6a1f0e6f2a02"),
			Name:          "Marcus Rodriguez",
			Email:         "marcus.rodriguez@example.com",
			Location:      "Austin, TX",
			SkillsOffered: []string{"Photography", "Video Editing", "Adobe Creative Suite"},
			SkillsWanted:  []string{"Python", "Data Analysis"},
			Availability:  []string{"Evenings"},
			Rating:        4.9,
			ReviewCount:   31,
			IsPublic:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.MustParse("6f1b1a52-0c6e-4d1f-9a3b-6a1f0e6f2a03"),
			Name:          "Emily Watson",
			Email:         "emily.watson@example.com",
			Location:      "Remote",
			SkillsOffered: []string{"Spanish", "French", "Content Writing"},
			SkillsWanted:  []string{"React", "Web Development"},
			Availability:  []string{"Flexible"},
			Rating:        4.7,
			ReviewCount:   18,
			IsPublic:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.MustParse("6f1b1a52-0c6e-4d1f-9a3b-6a1f0e6f2a04"),
			Name:          "David Park",
			Email:         "david.park@example.com",
			Location:      "Seattle, WA",
			SkillsOffered: []string{"Python", "Machine Learning", "Data Science"},
			SkillsWanted:  []string{"Guitar", "Music Production"},
			Availability:  []string{"Weekends"},
			Rating:        4.6,
			ReviewCount:   15,
			IsPublic:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}
