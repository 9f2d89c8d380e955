package collection

import (
	"strings"
	"time"
	"unicode/utf8"

	"learnapp/pkg/common"
	"learnapp/pkg/post"
)

const MaxTitleLen = 254

type Collection struct {
	Id          int64        `json:"id"`
	AuthorId    int64        `json:"author"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Created     time.Time    `json:"created"`
	Posts       []*post.Post `json:"posts"`
}

func (c *Collection) OwnerId() int64 { return c.AuthorId }

type CreateReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Posts       []int64 `json:"posts"`
}

// Patch updates title and description. Posts are added or removed
// according to Type, which must be post_add or post_remove when Posts is sent.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
	Posts       []int64 `json:"posts"`
}

func NormalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", common.Validation("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", common.Validation("title is longer than %d characters", MaxTitleLen)
	}
	return title, nil
}
