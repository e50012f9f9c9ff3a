package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mblog-app/backend/internal/models"
)

// In-memory fakes standing in for the Postgres repositories. They mimic the
// store contract the services depend on: gorm.ErrRecordNotFound for misses
// and gorm.ErrDuplicatedKey for unique-index violations.

type fakeStore struct {
	users   *fakeUserRepo
	tweets  *fakeTweetRepo
	likes   *fakeLikeRepo
	follows *fakeFollowRepo
}

func newFakeStore() *fakeStore {
	users := &fakeUserRepo{users: map[uuid.UUID]models.User{}}
	likes := &fakeLikeRepo{users: users}
	tweets := &fakeTweetRepo{tweets: map[uuid.UUID]models.Tweet{}, users: users, likes: likes}
	follows := &fakeFollowRepo{users: users}
	return &fakeStore{users: users, tweets: tweets, likes: likes, follows: follows}
}

type fakeUserRepo struct {
	users map[uuid.UUID]models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.UserName == user.UserName || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, user := range f.users {
		if user.UserName == identifier || user.Email == identifier {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

type fakeTweetRepo struct {
	tweets map[uuid.UUID]models.Tweet
	users  *fakeUserRepo
	likes  *fakeLikeRepo
}

func (f *fakeTweetRepo) Create(_ context.Context, tweet *models.Tweet) error {
	if tweet.ID == uuid.Nil {
		tweet.ID = uuid.New()
	}
	if tweet.CreatedAt.IsZero() {
		tweet.CreatedAt = time.Now()
	}
	f.tweets[tweet.ID] = *tweet
	return nil
}

func (f *fakeTweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error) {
	tweet, ok := f.tweets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	loaded := f.load(ctx, tweet)
	return &loaded, nil
}

func (f *fakeTweetRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.tweets[id]
	return ok, nil
}

func (f *fakeTweetRepo) ListByAuthorIDs(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]models.Tweet, error) {
	authors := map[uuid.UUID]bool{}
	for _, id := range authorIDs {
		authors[id] = true
	}
	var tweets []models.Tweet
	for _, tweet := range f.tweets {
		if authors[tweet.UserID] {
			tweets = append(tweets, f.load(ctx, tweet))
		}
	}
	sort.Slice(tweets, func(i, j int) bool { return tweets[i].CreatedAt.After(tweets[j].CreatedAt) })
	if offset >= len(tweets) {
		return []models.Tweet{}, nil
	}
	tweets = tweets[offset:]
	if limit < len(tweets) {
		tweets = tweets[:limit]
	}
	return tweets, nil
}

func (f *fakeTweetRepo) ListReplies(ctx context.Context, parentID uuid.UUID) ([]models.Tweet, error) {
	var tweets []models.Tweet
	for _, tweet := range f.tweets {
		if tweet.ParentID != nil && *tweet.ParentID == parentID {
			tweets = append(tweets, f.load(ctx, tweet))
		}
	}
	sort.Slice(tweets, func(i, j int) bool { return tweets[i].CreatedAt.Before(tweets[j].CreatedAt) })
	return tweets, nil
}

// load emulates the Author and Likes preloads.
func (f *fakeTweetRepo) load(ctx context.Context, tweet models.Tweet) models.Tweet {
	if author, err := f.users.GetByID(ctx, tweet.UserID); err == nil {
		tweet.Author = *author
	}
	tweet.Likes = f.likes.byTweet(ctx, tweet.ID)
	return tweet
}

type fakeLikeRepo struct {
	likes []models.Like
	users *fakeUserRepo
}

func (f *fakeLikeRepo) Create(_ context.Context, like *models.Like) error {
	for _, existing := range f.likes {
		if existing.TweetID == like.TweetID && existing.UserID == like.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	like.CreatedAt = time.Now()
	like.UpdatedAt = like.CreatedAt
	f.likes = append(f.likes, *like)
	return nil
}

func (f *fakeLikeRepo) Get(ctx context.Context, tweetID, userID uuid.UUID) (*models.Like, error) {
	for _, like := range f.likes {
		if like.TweetID == tweetID && like.UserID == userID {
			if user, err := f.users.GetByID(ctx, like.UserID); err == nil {
				like.User = *user
			}
			return &like, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLikeRepo) Exists(_ context.Context, tweetID, userID uuid.UUID) (bool, error) {
	for _, like := range f.likes {
		if like.TweetID == tweetID && like.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, tweetID, userID uuid.UUID) error {
	for i, like := range f.likes {
		if like.TweetID == tweetID && like.UserID == userID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeLikeRepo) byTweet(ctx context.Context, tweetID uuid.UUID) []models.Like {
	var likes []models.Like
	for _, like := range f.likes {
		if like.TweetID == tweetID {
			if user, err := f.users.GetByID(ctx, like.UserID); err == nil {
				like.User = *user
			}
			likes = append(likes, like)
		}
	}
	return likes
}

type fakeFollowRepo struct {
	follows []models.Follow
	users   *fakeUserRepo
}

func (f *fakeFollowRepo) Create(_ context.Context, follow *models.Follow) error {
	for _, existing := range f.follows {
		if existing.FollowerID == follow.FollowerID && existing.FollowingID == follow.FollowingID {
			return gorm.ErrDuplicatedKey
		}
	}
	follow.CreatedAt = time.Now()
	f.follows = append(f.follows, *follow)
	return nil
}

func (f *fakeFollowRepo) Get(ctx context.Context, followerID, followingID uuid.UUID) (*models.Follow, error) {
	for _, follow := range f.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			if follower, err := f.users.GetByID(ctx, followerID); err == nil {
				follow.Follower = *follower
			}
			if following, err := f.users.GetByID(ctx, followingID); err == nil {
				follow.Following = *following
			}
			return &follow, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFollowRepo) Exists(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	for _, follow := range f.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFollowRepo) Delete(_ context.Context, followerID, followingID uuid.UUID) error {
	for i, follow := range f.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeFollowRepo) ListFollowingIDs(_ context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, follow := range f.follows {
		if follow.FollowerID == followerID {
			ids = append(ids, follow.FollowingID)
		}
	}
	return ids, nil
}

// seedUser registers a user directly in the fake store.
func (s *fakeStore) seedUser(name string) models.User {
	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		UserName: name,
		Email:    name + "@example.com",
		Password: "hashed",
	}
	user.CreatedAt = time.Now()
	s.users.users[user.ID] = user
	return user
}

// seedTweet inserts a tweet with an explicit creation time so ordering and
// depth tests can arrange chains deterministically.
func (s *fakeStore) seedTweet(author uuid.UUID, content string, parentID *uuid.UUID, createdAt time.Time) models.Tweet {
	tweet := models.Tweet{
		ID:        uuid.New(),
		Content:   content,
		UserID:    author,
		ParentID:  parentID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	s.tweets.tweets[tweet.ID] = tweet
	return tweet
}
