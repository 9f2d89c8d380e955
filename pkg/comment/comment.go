package comment

import (
	"strings"
	"time"

	"learnapp/pkg/common"
)

type Comment struct {
	Id       int64     `json:"id"`
	AuthorId int64     `json:"author"`
	Username string    `json:"username"`
	PostId   int64     `json:"post"`
	Body     string    `json:"body"`
	Created  time.Time `json:"created"`
	Score    int       `json:"score"`
}

func (c *Comment) OwnerId() int64 { return c.AuthorId }

func NormalizeBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", common.Validation("comment body is required")
	}
	return body, nil
}
