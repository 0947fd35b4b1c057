package forum

import (
	"sort"

	"gullyconnect/internal/models"
)

// ContributorStat is a derived leaderboard entry; it is computed on demand
// and never persisted.
type ContributorStat struct {
	AuthorID      string `json:"author_id"`
	Alias         string `json:"alias"`
	PostCount     int    `json:"post_count"`
	CommentCount  int    `json:"comment_count"`
	ActivityScore int    `json:"activity_score"`
}

// TopContributors ranks authors of the given post and comment collections by
// activity score (post count + comment count) and returns at most n entries.
// Both collections are expected to already be scoped to the area and time
// window of interest. Equal scores order by AuthorID ascending so the
// leaderboard is deterministic across runs.
func TopContributors(posts []*models.Post, comments []*models.Comment, n int) []ContributorStat {
	if n <= 0 {
		return nil
	}

	postCounts := make(map[string]int)
	aliases := make(map[string]string)
	for _, p := range posts {
		postCounts[p.AuthorID]++
		if _, ok := aliases[p.AuthorID]; !ok {
			aliases[p.AuthorID] = p.AuthorAlias
		}
	}

	commentCounts := make(map[string]int)
	for _, c := range comments {
		commentCounts[c.AuthorID]++
		if _, ok := aliases[c.AuthorID]; !ok {
			aliases[c.AuthorID] = c.AuthorAlias
		}
	}

	stats := make([]ContributorStat, 0, len(aliases))
	for authorID, alias := range aliases {
		pc := postCounts[authorID]
		cc := commentCounts[authorID]
		stats = append(stats, ContributorStat{
			AuthorID:      authorID,
			Alias:         alias,
			PostCount:     pc,
			CommentCount:  cc,
			ActivityScore: pc + cc,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ActivityScore != stats[j].ActivityScore {
			return stats[i].ActivityScore > stats[j].ActivityScore
		}
		return stats[i].AuthorID < stats[j].AuthorID
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
