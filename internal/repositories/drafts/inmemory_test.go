package drafts

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	"github.com/KirkDiggler/rpg-content-admin/internal/uuid"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		drafts:        make(map[string]*Draft),
		uuidGenerator: uuid.NewSequenceGenerator("draft"),
		timeProvider:  &stepClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestInMemoryRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := newTestInMemory()

	draft := &Draft{OwnerID: "author-1", Kind: KindTrait, Payload: json.RawMessage(`{"name":"Darkvision"}`)}
	require.NoError(t, repo.Create(ctx, draft))
	assert.Equal(t, "draft-1", draft.ID)
	assert.False(t, draft.CreatedAt.IsZero())
	assert.Equal(t, draft.CreatedAt, draft.UpdatedAt)

	err := repo.Create(ctx, &Draft{ID: "draft-1", OwnerID: "author-1", Kind: KindTrait})
	assert.True(t, dnderr.IsAlreadyExists(err))

	err = repo.Create(ctx, &Draft{Kind: KindTrait})
	assert.True(t, dnderr.IsInvalidArgument(err))

	err = repo.Create(ctx, &Draft{OwnerID: "author-1", Kind: "spell"})
	assert.True(t, dnderr.IsInvalidArgument(err))

	assert.True(t, dnderr.IsInvalidArgument(repo.Create(ctx, nil)))
}

func TestInMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newTestInMemory()

	draft := &Draft{ID: "d1", OwnerID: "author-1", Kind: KindIncumbency, Payload: json.RawMessage(`{"a":1}`)}
	require.NoError(t, repo.Create(ctx, draft))

	draft.Payload[2] = 'b'

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got.Payload))

	got.OwnerID = "someone-else"
	again, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "author-1", again.OwnerID)

	_, err = repo.Get(ctx, "missing")
	assert.True(t, dnderr.IsNotFound(err))
	assert.Equal(t, "missing", dnderr.GetMeta(err)["draft_id"])

	_, err = repo.Get(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestInMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newTestInMemory()

	draft := &Draft{ID: "d1", OwnerID: "author-1", Kind: KindTrait}
	require.NoError(t, repo.Create(ctx, draft))
	created := draft.CreatedAt

	update := &Draft{ID: "d1", OwnerID: "author-1", Kind: KindTrait, Payload: json.RawMessage(`{"name":"Keen Senses"}`)}
	require.NoError(t, repo.Update(ctx, update))
	assert.Equal(t, created, update.CreatedAt)
	assert.True(t, update.UpdatedAt.After(created))

	got, err := repo.Get(ctx, "d1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Keen Senses"}`, string(got.Payload))

	err = repo.Update(ctx, &Draft{ID: "missing", OwnerID: "author-1", Kind: KindTrait})
	assert.True(t, dnderr.IsNotFound(err))

	err = repo.Update(ctx, &Draft{OwnerID: "author-1", Kind: KindTrait})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestInMemoryRepository_DeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestInMemory()

	for _, d := range []*Draft{
		{ID: "b", OwnerID: "author-1", Kind: KindTrait},
		{ID: "a", OwnerID: "author-1", Kind: KindIncumbency},
		{ID: "c", OwnerID: "author-2", Kind: KindTrait},
	} {
		require.NoError(t, repo.Create(ctx, d))
	}

	list, err := repo.ListByOwner(ctx, "author-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "oldest first")
	assert.Equal(t, "a", list[1].ID)

	require.NoError(t, repo.Delete(ctx, "b"))
	assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "b")))
	assert.True(t, dnderr.IsInvalidArgument(repo.Delete(ctx, "")))

	list, err = repo.ListByOwner(ctx, "author-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)

	list, err = repo.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.ListByOwner(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestDraft_EncodeDecode(t *testing.T) {
	type form struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}

	d := &Draft{ID: "d1"}
	require.NoError(t, d.Encode(form{Name: "Rage", Level: 3}))

	var out form
	require.NoError(t, d.Decode(&out))
	assert.Equal(t, form{Name: "Rage", Level: 3}, out)

	empty := &Draft{ID: "d2"}
	assert.True(t, dnderr.IsInvalidArgument(empty.Decode(&out)))

	broken := &Draft{ID: "d3", Payload: json.RawMessage(`{"name":`)}
	assert.True(t, dnderr.IsInternal(broken.Decode(&out)))
}
