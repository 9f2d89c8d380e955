package voting

import "learnapp/pkg/common"

type (
	VotingScore int

	Vote struct {
		Id       int64       `json:"id"`
		VoterId  int64       `json:"voter"`
		TargetId int64       `json:"-"`
		Score    VotingScore `json:"vote"`
	}

	// Target describes what is being voted on: the vote table, its reference
	// column and the table it references.
	Target struct {
		Name    string
		Table   string
		Column  string
		Parent  string
		PathVar string
	}
)

const (
	ScoreUp   VotingScore = 1
	ScoreDown VotingScore = -1
)

var (
	PostTarget = Target{
		Name:    "post",
		Table:   "post_votes",
		Column:  "post_id",
		Parent:  "posts",
		PathVar: "post_id",
	}
	CommentTarget = Target{
		Name:    "comment",
		Table:   "comment_votes",
		Column:  "comment_id",
		Parent:  "comments",
		PathVar: "comment_id",
	}
)

func (v *Vote) OwnerId() int64 { return v.VoterId }

func (s VotingScore) Validate() error {
	if s != ScoreUp && s != ScoreDown {
		return common.Validation("vote must be 1 or -1")
	}
	return nil
}

// JSON renders the vote with the target under its own name, e.g. {"post": 3}.
func (t Target) JSON(v *Vote) map[string]interface{} {
	return map[string]interface{}{
		"id":    v.Id,
		"voter": v.VoterId,
		t.Name:  v.TargetId,
		"vote":  v.Score,
	}
}
