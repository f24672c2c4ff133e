package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/migration"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RepositorySuite exercises the ledger and feed against a real store
type RepositorySuite struct {
	suite.Suite
	db *gorm.DB

	profiles ProfileRepository
	posts    PostRepository
	actions  ActionRepository
	feed     FeedRepository
	comments CommentRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	// a fresh connection would see a fresh in-memory database
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	// sqlite does not enforce foreign keys unless told to
	s.Require().NoError(db.Exec("PRAGMA foreign_keys = ON").Error)

	s.Require().NoError(migration.Run(db))
	s.db = db

	s.profiles = NewProfileRepository(db)
	s.posts = NewPostRepository(db)
	s.actions = NewActionRepository(db)
	s.feed = NewFeedRepository(db)
	s.comments = NewCommentRepository(db)
}

func (s *RepositorySuite) newProfile(email string) *domain.Profile {
	profile := &domain.Profile{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: email,
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.profiles.Create(profile))
	return profile
}

func (s *RepositorySuite) newPost(author *domain.Profile, title string, createdAt time.Time) *domain.Post {
	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      "body of " + title,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	s.Require().NoError(s.posts.Create(post))
	return post
}

// --- Profile uniqueness ---

func (s *RepositorySuite) TestProfileEmailUnique() {
	s.newProfile("dup@example.com")

	err := s.profiles.Create(&domain.Profile{
		ID:        uuid.NewString(),
		Email:     "dup@example.com",
		CreatedAt: time.Now(),
	})
	s.ErrorIs(err, gorm.ErrDuplicatedKey)

	var count int64
	s.db.Model(&domain.Profile{}).Where("email = ?", "dup@example.com").Count(&count)
	s.Equal(int64(1), count)
}

// --- Ledger ---

func (s *RepositorySuite) TestSetActionToggleOnIsIdempotent() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "hello", time.Now())

	first, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, true)
	s.Require().NoError(err)
	s.True(first.Active)
	s.Equal(int64(1), first.Count)

	second, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, true)
	s.Require().NoError(err)
	s.True(second.Active)
	s.Equal(int64(1), second.Count)

	var entries int64
	s.db.Model(&domain.ActionEntry{}).
		Where("profile_id = ? AND post_id = ? AND kind = ?", viewer.ID, post.ID, domain.ActionLike).
		Count(&entries)
	s.Equal(int64(1), entries)
}

func (s *RepositorySuite) TestSetActionToggleOffAbsentIsNoop() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "hello", time.Now())

	status, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionWishlist, false)
	s.Require().NoError(err)
	s.False(status.Active)
	s.Equal(int64(0), status.Count)
}

func (s *RepositorySuite) TestSetActionMissingPost() {
	viewer := s.newProfile("viewer@example.com")

	_, err := s.actions.SetAction(viewer.ID, uuid.NewString(), domain.ActionLike, true)
	s.ErrorIs(err, common.ErrPostNotFound)

	var entries int64
	s.db.Model(&domain.ActionEntry{}).Count(&entries)
	s.Equal(int64(0), entries, "no orphaned ledger entry")
}

func (s *RepositorySuite) TestSetActionConcurrentTogglesOn() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "hello", time.Now())

	const n = 8
	var wg sync.WaitGroup
	results := make([]*domain.ActionStatus, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, true)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		s.Require().NoError(errs[i])
		s.True(results[i].Active, "every caller observes active=true")
	}

	var entries int64
	s.db.Model(&domain.ActionEntry{}).
		Where("post_id = ? AND kind = ?", post.ID, domain.ActionLike).
		Count(&entries)
	s.Equal(int64(1), entries, "exactly one entry survives the race")
}

func (s *RepositorySuite) TestCountConsistencyAcrossProfiles() {
	author := s.newProfile("author@example.com")
	post := s.newPost(author, "hello", time.Now())

	const k = 5
	likers := make([]*domain.Profile, k)
	for i := 0; i < k; i++ {
		likers[i] = s.newProfile(fmt.Sprintf("liker%d@example.com", i))
		status, err := s.actions.SetAction(likers[i].ID, post.ID, domain.ActionLike, true)
		s.Require().NoError(err)
		s.Equal(int64(i+1), status.Count)
	}

	const j = 2
	for i := 0; i < j; i++ {
		status, err := s.actions.SetAction(likers[i].ID, post.ID, domain.ActionLike, false)
		s.Require().NoError(err)
		s.False(status.Active)
	}

	status, err := s.actions.GetStatus(likers[k-1].ID, post.ID, domain.ActionLike)
	s.Require().NoError(err)
	s.Equal(int64(k-j), status.Count)
	s.True(status.Active)
}

// --- Feed ---

func (s *RepositorySuite) TestListFeedOrderingAndAggregates() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")

	base := time.Now().Add(-time.Hour)
	oldest := s.newPost(author, "oldest", base)
	middle := s.newPost(author, "middle", base.Add(time.Minute))
	newest := s.newPost(author, "newest", base.Add(2*time.Minute))

	_, err := s.actions.SetAction(viewer.ID, middle.ID, domain.ActionLike, true)
	s.Require().NoError(err)
	_, err = s.actions.SetAction(author.ID, middle.ID, domain.ActionLike, true)
	s.Require().NoError(err)
	_, err = s.actions.SetAction(viewer.ID, oldest.ID, domain.ActionWishlist, true)
	s.Require().NoError(err)

	items, total, err := s.feed.ListFeed(viewer.ID, 1, 10)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(items, 3)

	s.Equal(newest.ID, items[0].ID)
	s.Equal(middle.ID, items[1].ID)
	s.Equal(oldest.ID, items[2].ID)

	s.Equal(int64(2), items[1].LikesCount)
	s.True(items[1].UserLiked)
	s.False(items[1].UserWishlisted)

	s.Equal(int64(1), items[2].WishlistCount)
	s.True(items[2].UserWishlisted)
	s.False(items[2].UserLiked)

	s.Equal("author@example.com", items[0].Author.Email)
}

func (s *RepositorySuite) TestListFeedTieBreakOnCreatedAt() {
	author := s.newProfile("author@example.com")
	at := time.Now().Truncate(time.Second)
	a := s.newPost(author, "a", at)
	b := s.newPost(author, "b", at)

	items, _, err := s.feed.ListFeed("", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(items, 2)

	// same created_at: higher id first, deterministic either way
	wantFirst := a.ID
	if b.ID > a.ID {
		wantFirst = b.ID
	}
	s.Equal(wantFirst, items[0].ID)
}

func (s *RepositorySuite) TestListFeedAnonymousFlagsFalse() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "hello", time.Now())

	_, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, true)
	s.Require().NoError(err)

	items, _, err := s.feed.ListFeed("", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(int64(1), items[0].LikesCount)
	s.False(items[0].UserLiked)
	s.False(items[0].UserWishlisted)
}

func (s *RepositorySuite) TestListWishlistOrderedByMarkTime() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")

	base := time.Now().Add(-time.Hour)
	first := s.newPost(author, "first", base)
	second := s.newPost(author, "second", base.Add(time.Minute))

	// wishlist the newer post first, then the older one
	_, err := s.actions.SetAction(viewer.ID, second.ID, domain.ActionWishlist, true)
	s.Require().NoError(err)
	time.Sleep(5 * time.Millisecond)
	_, err = s.actions.SetAction(viewer.ID, first.ID, domain.ActionWishlist, true)
	s.Require().NoError(err)

	items, total, err := s.feed.ListWishlist(viewer.ID, 1, 10)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(items, 2)
	s.Equal(first.ID, items[0].ID, "most recently wishlisted first")
	s.Equal(second.ID, items[1].ID)
}

func (s *RepositorySuite) TestGetPostAndViewIncrement() {
	author := s.newProfile("author@example.com")
	post := s.newPost(author, "hello", time.Now())

	item, err := s.feed.GetPost(post.ID, "")
	s.Require().NoError(err)
	s.Equal(post.ID, item.ID)
	s.Equal("body of hello", item.Body)

	s.Require().NoError(s.feed.IncrementViews(post.ID))
	s.Require().NoError(s.feed.IncrementViews(post.ID))

	refreshed, err := s.posts.FindByID(post.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), refreshed.Views)
}

func (s *RepositorySuite) TestGetPostNotFound() {
	_, err := s.feed.GetPost(uuid.NewString(), "")
	s.ErrorIs(err, common.ErrPostNotFound)

	err = s.feed.IncrementViews(uuid.NewString())
	s.ErrorIs(err, common.ErrPostNotFound)
}

// --- Snapshot consistency ---

// The viewer flag and the count come out of the same SQL statement, so a
// page observed mid-toggle must still be internally consistent: with a
// single potential liker, user_liked and likes_count can never disagree.
func (s *RepositorySuite) TestListFeedSnapshotUnderConcurrentToggles() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "hello", time.Now())

	done := make(chan error, 1)
	go func() {
		for i := 0; i < 30; i++ {
			if _, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, i%2 == 0); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 30; i++ {
		items, total, err := s.feed.ListFeed(viewer.ID, 1, 10)
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal(int64(1), total)
		s.Equal(items[0].UserLiked, items[0].LikesCount == 1,
			"flag and count must reflect the same commit point")
	}

	s.Require().NoError(<-done)
}

// Total and page rows share one transaction; a post committed between the
// count and the select must never make them diverge.
func (s *RepositorySuite) TestListFeedTotalMatchesPageUnderConcurrentCreates() {
	author := s.newProfile("author@example.com")

	done := make(chan error, 1)
	go func() {
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 20; i++ {
			post := &domain.Post{
				ID:        uuid.NewString(),
				Title:     fmt.Sprintf("post %d", i),
				Body:      "body",
				AuthorID:  author.ID,
				CreatedAt: base.Add(time.Duration(i) * time.Second),
				UpdatedAt: base.Add(time.Duration(i) * time.Second),
			}
			if err := s.posts.Create(post); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	for i := 0; i < 20; i++ {
		items, total, err := s.feed.ListFeed("", 1, 100)
		s.Require().NoError(err)
		s.Equal(int64(len(items)), total, "total and page must come from one snapshot")
	}

	s.Require().NoError(<-done)
}

// --- Ledger referential integrity ---

// The store itself must refuse an entry for a nonexistent post, whatever
// path tries to write it.
func (s *RepositorySuite) TestLedgerRejectsOrphanEntry() {
	viewer := s.newProfile("viewer@example.com")

	err := s.db.Omit("Post").Create(&domain.ActionEntry{
		ID:        uuid.NewString(),
		ProfileID: viewer.ID,
		PostID:    uuid.NewString(),
		Kind:      domain.ActionLike,
		CreatedAt: time.Now(),
	}).Error
	s.ErrorIs(err, gorm.ErrForeignKeyViolated)

	var entries int64
	s.db.Model(&domain.ActionEntry{}).Count(&entries)
	s.Equal(int64(0), entries)
}

func (s *RepositorySuite) TestCommentOnMissingPostRejected() {
	viewer := s.newProfile("viewer@example.com")

	err := s.comments.Create(&domain.Comment{
		ID:        uuid.NewString(),
		PostID:    uuid.NewString(),
		ProfileID: viewer.ID,
		Body:      "into the void",
		CreatedAt: time.Now(),
	})
	s.ErrorIs(err, common.ErrPostNotFound)
}

// --- Cascade delete ---

func (s *RepositorySuite) TestDeletePostCascades() {
	author := s.newProfile("author@example.com")
	viewer := s.newProfile("viewer@example.com")
	post := s.newPost(author, "doomed", time.Now())

	_, err := s.actions.SetAction(viewer.ID, post.ID, domain.ActionLike, true)
	s.Require().NoError(err)
	_, err = s.actions.SetAction(viewer.ID, post.ID, domain.ActionWishlist, true)
	s.Require().NoError(err)
	s.Require().NoError(s.comments.Create(&domain.Comment{
		ID:        uuid.NewString(),
		PostID:    post.ID,
		ProfileID: viewer.ID,
		Body:      "nice",
		CreatedAt: time.Now(),
	}))

	s.Require().NoError(s.posts.Delete(post.ID))

	var entries, comments int64
	s.db.Model(&domain.ActionEntry{}).Where("post_id = ?", post.ID).Count(&entries)
	s.db.Model(&domain.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	s.Equal(int64(0), entries)
	s.Equal(int64(0), comments)

	_, err = s.posts.FindByID(post.ID)
	s.ErrorIs(err, common.ErrPostNotFound)
}
