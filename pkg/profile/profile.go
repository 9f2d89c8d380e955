package profile

import (
	"learnapp/pkg/category"
	"learnapp/pkg/post"
	"learnapp/pkg/user"
)

type Profile struct {
	User       *user.User           `json:"user"`
	Categories []*category.Category `json:"category"`
	SavedPosts []*post.Post         `json:"saved_posts"`
}

// Patch changes a profile. A present Category replaces the subscriptions,
// an empty one clears them. SavedPosts needs Type to tell add from remove.
type Patch struct {
	Category   *[]int64 `json:"category"`
	Type       string   `json:"type"`
	SavedPosts []int64  `json:"saved_posts"`
}
