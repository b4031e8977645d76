//go:build integration
// +build integration

package drafts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts"
	"github.com/KirkDiggler/rpg-content-admin/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := drafts.NewRedisRepository(&drafts.RedisRepoConfig{
		Client: client,
		TTL:    time.Hour,
	})

	ctx := context.Background()

	t.Run("create and retrieve draft", func(t *testing.T) {
		draft := testutils.CreateTestDraft("", "author-1", drafts.KindTrait,
			testutils.CreateTestTrait("", "Keen Senses", "Sight", "Smell"))

		require.NoError(t, repo.Create(ctx, draft))
		require.NotEmpty(t, draft.ID)

		got, err := repo.Get(ctx, draft.ID)
		require.NoError(t, err)

		var form trait.Trait
		require.NoError(t, got.Decode(&form))
		assert.Equal(t, "Keen Senses", form.Name)
		assert.Len(t, form.Options, 2)

		ttl, err := client.TTL(ctx, "draft:"+draft.ID).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("update and list by owner", func(t *testing.T) {
		a := testutils.CreateTestDraft("list-a", "author-2", drafts.KindTrait, testutils.CreateTestTrait("", "Rage"))
		b := testutils.CreateTestDraft("list-b", "author-2", drafts.KindIncumbency,
			testutils.CreateTestIncumbency("", "warden", "Warden", 1))
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		require.NoError(t, a.Encode(testutils.CreateTestTrait("", "Greater Rage")))
		require.NoError(t, repo.Update(ctx, a))

		list, err := repo.ListByOwner(ctx, "author-2")
		require.NoError(t, err)
		require.Len(t, list, 2)

		var form trait.Trait
		require.NoError(t, list[0].Decode(&form))
		assert.Equal(t, "Greater Rage", form.Name)
	})

	t.Run("delete removes from owner index", func(t *testing.T) {
		d := testutils.CreateTestDraft("gone", "author-3", drafts.KindTrait, testutils.CreateTestTrait("", "Stonecunning"))
		require.NoError(t, repo.Create(ctx, d))
		require.NoError(t, repo.Delete(ctx, d.ID))

		_, err := repo.Get(ctx, d.ID)
		assert.True(t, dnderr.IsNotFound(err))

		list, err := repo.ListByOwner(ctx, "author-3")
		require.NoError(t, err)
		assert.Empty(t, list)

		members, err := client.SMembers(ctx, "owner:author-3:drafts").Result()
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}
