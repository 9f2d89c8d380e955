package post

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"learnapp/pkg/common"
)

const (
	MaxTitleLen  = 254
	MaxTagLen    = 30
	MaxTags      = 10
	MaxResources = 10

	OrderNewest = "newest"
	OrderRating = "rating"
)

var tagRe = regexp.MustCompile(`^[a-z0-9\-_\s]+$`)

type Post struct {
	Id           int64     `json:"id"`
	AuthorId     int64     `json:"author"`
	Username     string    `json:"username"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Resources    []string  `json:"resources"`
	Tags         []string  `json:"tags"`
	CategoryId   int64     `json:"category"`
	CategoryName string    `json:"category_name"`
	Image        string    `json:"image"`
	Created      time.Time `json:"created"`
	Score        int       `json:"score"`
}

func (p *Post) OwnerId() int64 { return p.AuthorId }

// Patch carries the writable fields of a post. Nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Resources   *[]string `json:"resources"`
	Tags        *[]string `json:"tags"`
	Category    *int64    `json:"category"`
	Image       *string   `json:"image"`
}

// Filter selects posts for listing. Zero fields do not restrict the result.
type Filter struct {
	Ids          []int64
	Username     string
	SubscriberId int64
	SavedBy      int64
	CollectionId int64
	Tags         []string
	Order        string
}

// Apply validates the patch and copies it onto p.
func (pt *Patch) Apply(p *Post) error {
	if pt.Title != nil {
		title := strings.TrimSpace(*pt.Title)
		if err := ValidateTitle(title); err != nil {
			return err
		}
		p.Title = title
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Resources != nil {
		res, err := NormalizeResources(*pt.Resources)
		if err != nil {
			return err
		}
		p.Resources = res
	}
	if pt.Tags != nil {
		tags, err := NormalizeTags(*pt.Tags)
		if err != nil {
			return err
		}
		p.Tags = tags
	}
	if pt.Category != nil {
		p.CategoryId = *pt.Category
	}
	if pt.Image != nil {
		p.Image = strings.TrimSpace(*pt.Image)
	}
	return nil
}

func ValidateTitle(title string) error {
	if title == "" {
		return common.Validation("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return common.Validation("title is longer than %d characters", MaxTitleLen)
	}
	return nil
}

// NormalizeTags drops duplicate tags keeping the first occurrence. The first
// invalid tag rejects the whole list.
func NormalizeTags(tags []string) ([]string, error) {
	res := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if len(t) > MaxTagLen || !tagRe.MatchString(t) {
			return nil, common.Validation("invalid tag %q", t)
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}
	if len(res) > MaxTags {
		return nil, common.Validation("no more than %d tags are allowed", MaxTags)
	}
	return res, nil
}

// NormalizeResources accepts up to MaxResources absolute http(s) URLs.
func NormalizeResources(resources []string) ([]string, error) {
	if len(resources) > MaxResources {
		return nil, common.Validation("no more than %d resources are allowed", MaxResources)
	}
	res := make([]string, 0, len(resources))
	for _, raw := range resources {
		raw = strings.TrimSpace(raw)
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, common.Validation("invalid resource url %q", raw)
		}
		res = append(res, raw)
	}
	return res, nil
}

// SearchTags lowercases the search terms and drops duplicates and blanks.
func SearchTags(terms []string) []string {
	res := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}
	return res
}
