package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"

	"learnapp/pkg/category"
	"learnapp/pkg/comment"
	. "learnapp/pkg/common"
	"learnapp/pkg/post"
	"learnapp/pkg/user"
	"learnapp/pkg/voting"
)

var (
	// flags
	seedUsers int
	seedPosts int

	f = faker.New()
)

func init() {
	SeedCommand.Flags().IntVar(&seedUsers, "users", 5, "number of random users to create")
	SeedCommand.Flags().IntVar(&seedPosts, "posts", 20, "number of random posts to create")
	RootCmd.AddCommand(&SeedCommand)
}

// SeedCommand generates fake content to have better UI experience.
var SeedCommand = cobra.Command{
	Use:   "seed",
	Short: "Fill the database with fake users, posts, comments and votes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()
		return seed(ctx, db)
	},
}

func seed(ctx context.Context, db *sql.DB) error {
	userRepo := user.NewUserRepo(db)
	authors, err := userRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(authors) == 0 {
		if authors, err = createAuthors(ctx, userRepo); err != nil {
			return err
		}
	}

	categories, err := category.NewCategoryRepo(db).GetAll(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return errors.New("seed: no categories, run migrate first")
	}

	postRepo := post.NewPostRepo(db)
	commentRepo := comment.NewCommentRepo(db)
	votes := voting.NewVoteRepo(db, voting.PostTarget)
	for i := 0; i < seedPosts; i++ {
		p := genPost(authors, categories)
		if _, err := postRepo.Add(ctx, p); err != nil {
			log.Println("seed: can't add post:", err)
			continue
		}
		for _, c := range genComments(authors, p.Id) {
			if _, err := commentRepo.Add(ctx, c); err != nil {
				return err
			}
		}
		for _, v := range genVotes(authors, p.Id) {
			if _, err := votes.Add(ctx, v); err != nil {
				return err
			}
		}
	}
	log.Printf("seed: %d users, %d posts", len(authors), seedPosts)
	return nil
}

// createAuthors adds "pike" plus random users, all with the password "sdfsdfsdf".
func createAuthors(ctx context.Context, userRepo *user.UserRepo) ([]*user.User, error) {
	onePassForAll := NewPassHash("sdfsdfsdf")
	users := []*user.User{{
		Email:    "pike@example.com",
		Username: "pike",
		Password: onePassForAll,
	}}
	for i := 0; i < seedUsers; i++ {
		username := strings.ToLower(f.Person().FirstName()) + RandStringRunes(4)
		users = append(users, &user.User{
			Email:    strings.ToLower(username) + "@example.com",
			Username: username,
			Password: onePassForAll,
		})
	}
	for _, u := range users {
		if _, err := userRepo.Add(ctx, u); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func genPost(users []*user.User, categories []*category.Category) *post.Post {
	resources := []string{}
	if rand.Intn(2) == 0 {
		resources = append(resources, f.Internet().URL())
	}
	tags := []string{}
	for _, w := range f.Lorem().Words(rand.Intn(4)) {
		tags = append(tags, strings.ToLower(w))
	}
	tags, _ = post.NormalizeTags(tags)

	return &post.Post{
		AuthorId:    randUser(users).Id,
		Title:       genTitle(),
		Description: genText(),
		Resources:   resources,
		Tags:        tags,
		CategoryId:  categories[rand.Intn(len(categories))].Id,
		Created:     f.Time().Time(time.Now()),
	}
}

// genComments picks distinct authors, a user comments a post at most once.
func genComments(users []*user.User, postId int64) []*comment.Comment {
	comments := []*comment.Comment{}
	for _, i := range rand.Perm(len(users))[:rand.Intn(len(users)+1)] {
		comments = append(comments, &comment.Comment{
			AuthorId: users[i].Id,
			PostId:   postId,
			Body:     genText(),
			Created:  time.Now(),
		})
	}
	return comments
}

// genVotes lets a random subset of users vote once each.
func genVotes(users []*user.User, postId int64) []*voting.Vote {
	votes := []*voting.Vote{}
	for _, u := range users {
		switch rand.Intn(3) {
		case 0:
			votes = append(votes, &voting.Vote{VoterId: u.Id, TargetId: postId, Score: voting.ScoreUp})
		case 1:
			votes = append(votes, &voting.Vote{VoterId: u.Id, TargetId: postId, Score: voting.ScoreDown})
		}
	}
	return votes
}

func genTitle() string {
	return strings.Join(f.Lorem().Words(rand.Intn(5)+3), " ")
}

func genText() string {
	return f.Lorem().Paragraph(rand.Intn(3) + 2)
}

func randUser(users []*user.User) *user.User {
	return users[rand.Intn(len(users))]
}
