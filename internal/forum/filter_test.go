package forum

import (
	"testing"

	"gullyconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPosts() []*models.Post {
	return []*models.Post{
		{ID: 1, Title: "Best dosa places", Body: "Hidden gems near the station", Area: "mumbai", Category: "gc/mumbai/food"},
		{ID: 2, Title: "Is Marine Drive safe at night?", Body: "Asking for a flatmate", Area: "mumbai", Category: "gc/mumbai/safety"},
		{ID: 3, Title: "Worli food crawl", Body: "Weekend plan", Area: "worli", Category: "gc/worli/food"},
	}
}

func TestPostFilter_AreaAndTopic(t *testing.T) {
	t.Parallel()

	// area narrows to the city's namespace, topic to the path segment.
	got := PostFilter{Area: "mumbai", Topic: "food"}.Apply(testPosts())

	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestPostFilter_TextQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantIDs []uint
	}{
		{name: "matches title case-insensitively", query: "MARINE drive", wantIDs: []uint{2}},
		{name: "matches body", query: "near the station", wantIDs: []uint{1}},
		{name: "substring across posts", query: "food", wantIDs: []uint{3}},
		{name: "no match", query: "parking", wantIDs: nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := PostFilter{Query: tc.query}.Apply(testPosts())
			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tc.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tc.wantIDs, ids)
			}
		})
	}
}

func TestPostFilter_UnsetFacetsMatchAll(t *testing.T) {
	t.Parallel()

	posts := testPosts()
	assert.Equal(t, posts, PostFilter{}.Apply(posts))
}

func TestPostFilter_FacetsCompose(t *testing.T) {
	t.Parallel()

	// AND across facets: text matches post 1 and 3, area keeps only mumbai.
	got := PostFilter{Query: "food", Area: "mumbai"}.Apply(testPosts())
	assert.Empty(t, got)

	got = PostFilter{Query: "dosa", Area: "mumbai", Topic: "food"}.Apply(testPosts())
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestPostFilter_AggregateAreaMatchesCategoryPrefix(t *testing.T) {
	t.Parallel()

	// A neighbourhood-scoped post still belongs to its city's aggregate
	// namespace when the category carries the city as its first segment.
	posts := []*models.Post{
		{ID: 4, Area: "bandra-west", Category: "gc/mumbai/housing"},
	}
	got := PostFilter{Area: "mumbai"}.Apply(posts)
	require.Len(t, got, 1)

	got = PostFilter{Area: "pune"}.Apply(posts)
	assert.Empty(t, got)
}

func TestPostFilter_TopicMatchesAnySegment(t *testing.T) {
	t.Parallel()

	posts := []*models.Post{
		{ID: 5, Area: "mumbai", Category: "gc/mumbai/food/streetfood"},
	}
	assert.Len(t, PostFilter{Topic: "food"}.Apply(posts), 1)
	assert.Len(t, PostFilter{Topic: "streetfood"}.Apply(posts), 1)
	assert.Empty(t, PostFilter{Topic: "street"}.Apply(posts))
}

func TestPostFilter_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	got := PostFilter{Area: "mumbai"}.Apply(testPosts())
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(2), got[1].ID)
}
