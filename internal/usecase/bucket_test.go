package usecase

import (
	"testing"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketComments(t *testing.T) {
	r1 := &entity.Review{ID: uuid.New()}
	r2 := &entity.Review{ID: uuid.New()}
	t1 := time.Now()
	c1 := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: t1}, ReviewID: r1.ID, Body: "c1"}
	c2 := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: t1.Add(time.Second)}, ReviewID: r1.ID, Body: "c2"}

	buckets := bucketComments([]*entity.Review{r1, r2}, []*entity.Comment{c1, c2})

	assert.Equal(t, []*entity.Comment{c1, c2}, buckets[r1.ID])

	empty, ok := buckets[r2.ID]
	require.True(t, ok, "review without comments must still have a bucket")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBucketComments_KeepsInputOrderAcrossReviews(t *testing.T) {
	r1 := &entity.Review{ID: uuid.New()}
	r2 := &entity.Review{ID: uuid.New()}
	a := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ReviewID: r2.ID, Body: "a"}
	b := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ReviewID: r1.ID, Body: "b"}
	c := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ReviewID: r2.ID, Body: "c"}

	buckets := bucketComments([]*entity.Review{r1, r2}, []*entity.Comment{a, b, c})

	assert.Equal(t, []*entity.Comment{b}, buckets[r1.ID])
	assert.Equal(t, []*entity.Comment{a, c}, buckets[r2.ID])
}

func TestAttachComments(t *testing.T) {
	r1 := &entity.Review{ID: uuid.New(), Comment: "first"}
	r2 := &entity.Review{ID: uuid.New(), Comment: "second"}
	c1 := &entity.Comment{BaseSimple: entity.BaseSimple{ID: uuid.New()}, ReviewID: r2.ID, Body: "hi"}

	out := attachComments([]*entity.Review{r1, r2}, bucketComments([]*entity.Review{r1, r2}, []*entity.Comment{c1}))

	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Comment)
	assert.NotNil(t, out[0].Comments)
	assert.Empty(t, out[0].Comments)
	require.Len(t, out[1].Comments, 1)
	assert.Equal(t, "hi", out[1].Comments[0].Body)
}
