package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil)
	ctx := context.Background()

	var dest []int
	assert.ErrorIs(t, repo.Get(ctx, "academic:students:list", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "academic:students:list", []int{1}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "academic:students:*"))
}
