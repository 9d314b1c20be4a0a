package app

import (
	"context"

	"techtrends/app/models"
	"techtrends/app/services"
)

// SeedPosts are written by "techtrends init --seed".
var SeedPosts = []models.Post{
	{
		Title:   "2020 CNCF Annual Report",
		Content: "The Cloud Native Computing Foundation (CNCF) annual report for 2020 is now available. The report highlights the growth of the community, events, projects, and more, over the past year.",
	},
	{
		Title:   "KubeCon + CloudNativeCon 2021",
		Content: "The Cloud Native Computing Foundation's flagship conference gathers adopters and technologists from leading open source and cloud native communities.",
	},
	{
		Title:   "Kubernetes v1.20 Release Notes",
		Content: "Kubernetes v1.20 is the third and final release of 2020. This release consists of 42 enhancements: 11 enhancements have graduated to stable, 15 enhancements are moving to beta, and 16 enhancements are entering alpha.",
	},
	{
		Title:   "CNCF Cloud Native Interactive Landscape",
		Content: "The Cloud Native Trail Map is CNCF's recommended path through the cloud native landscape. The cloud native landscape, serverless landscape, and member landscape are dynamically generated on this website.",
	},
}

// Seed stores SeedPosts through the post service and returns how many were
// written.
func Seed(ctx context.Context, posts *services.PostService) (int, error) {
	for i, p := range SeedPosts {
		post := p
		if err := posts.CreatePost(ctx, &post); err != nil {
			return i, err
		}
	}
	return len(SeedPosts), nil
}
