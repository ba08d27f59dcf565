// internal/store/posts.go
package store

import (
	"sync"

	"github.com/wooshcafe/woosh-backend/internal/models"
)

type PostList struct {
	mtx   sync.Mutex
	posts []models.SocialPost
}

func NewPostList(seed ...models.SocialPost) *PostList {
	l := &PostList{}
	l.posts = append(l.posts, seed...)
	return l
}

func (l *PostList) Prepend(post models.SocialPost) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.posts = append([]models.SocialPost{post}, l.posts...)
}

func (l *PostList) List() []models.SocialPost {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	snapshot := make([]models.SocialPost, len(l.posts))
	copy(snapshot, l.posts)
	return snapshot
}
