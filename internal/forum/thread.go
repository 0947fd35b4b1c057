// Package forum holds the pure in-memory operations of the community
// engine: comment threading, facet filtering, and contributor ranking.
// Nothing in this package performs I/O; callers fetch scoped collections
// through the repository layer and hand them in.
package forum

import (
	"sort"
	"strconv"

	"gullyconnect/internal/models"
)

// RootThreadKey is the bucket key for comments with no parent.
const RootThreadKey = "root"

// ThreadComments groups a flat comment collection for one post into reply
// buckets: RootThreadKey maps to the top-level comments, and each parent
// comment's ID (decimal string) maps to its direct children. Buckets are
// ordered by CreatedAt ascending, ID ascending on equal timestamps.
//
// The product only ever renders one reply level (root comment plus direct
// replies); deeper parent chains still bucket correctly but no rendering
// guarantee is made for them.
func ThreadComments(comments []*models.Comment) map[string][]*models.Comment {
	threads := make(map[string][]*models.Comment)
	for _, c := range comments {
		key := RootThreadKey
		if c.ParentCommentID != nil {
			key = strconv.FormatUint(uint64(*c.ParentCommentID), 10)
		}
		threads[key] = append(threads[key], c)
	}

	for _, bucket := range threads {
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].CreatedAt.Equal(bucket[j].CreatedAt) {
				return bucket[i].ID < bucket[j].ID
			}
			return bucket[i].CreatedAt.Before(bucket[j].CreatedAt)
		})
	}
	return threads
}
