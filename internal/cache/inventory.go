package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostsListKey          = "posts:recent"
	PostKeyPrefix         = "post:%d"
	PostCommentsPrefix    = "post:%d:comments"
	AreaPostsPrefix       = "area:%s:posts"
	ContributorsKeyPrefix = "area:%s:contributors:%d"
)

const (
	ListTTL         = 1 * time.Minute
	PostTTL         = 30 * time.Minute
	PostCommentsTTL = 2 * time.Minute
	AreaPostsTTL    = 5 * time.Minute
	ContributorsTTL = 10 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func PostCommentsKey(postID uint) string {
	return fmt.Sprintf(PostCommentsPrefix, postID)
}

func AreaPostsKey(area string) string {
	return fmt.Sprintf(AreaPostsPrefix, area)
}

func ContributorsKey(area string, n int) string {
	return fmt.Sprintf(ContributorsKeyPrefix, area, n)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached post along with the listings and rankings
// its counters feed into.
func InvalidatePost(ctx context.Context, postID uint, area string) {
	Invalidate(ctx, PostKey(postID))
	InvalidateArea(ctx, area)
}

func InvalidatePostComments(ctx context.Context, postID uint) {
	Invalidate(ctx, PostCommentsKey(postID))
}

// InvalidateArea drops the area's post listing and every cached contributor
// ranking for it. Rankings are cached per requested size, so scan the common
// sizes rather than tracking which were requested.
func InvalidateArea(ctx context.Context, area string) {
	Invalidate(ctx, PostsListKey)
	Invalidate(ctx, AreaPostsKey(area))
	for _, n := range []int{3, 5, 10} {
		Invalidate(ctx, ContributorsKey(area, n))
	}
}
