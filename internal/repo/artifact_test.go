package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"huffman_go/internal/model"
)

func exerciseRepo(t *testing.T, r ArtifactRepo) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := &model.Artifact{ID: uuid.NewString(), CodeTable: "97\t0\n", Padding: 3, Payload: []byte{0x00}, InputBytes: 3, ZstdBytes: 12, CreatedAt: now.Add(-time.Minute)}
	newer := &model.Artifact{ID: uuid.NewString(), CodeTable: "97\t1\n98\t0\n", Padding: 4, Payload: []byte{0xE0}, InputBytes: 4, ZstdBytes: 13, CreatedAt: now}
	require.NoError(t, r.Save(ctx, older))
	require.NoError(t, r.Save(ctx, newer))

	got, err := r.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	require.Equal(t, newer.CodeTable, got.CodeTable)
	require.Equal(t, newer.Payload, got.Payload)
	require.Equal(t, newer.Padding, got.Padding)
	require.True(t, newer.CreatedAt.Equal(got.CreatedAt))

	_, err = r.FindByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	list, err := r.List(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	require.Subset(t, ids, []string{older.ID, newer.ID})
}

func TestArtifactRepoInMemory(t *testing.T) {
	r := NewArtifactRepoInMemory()
	exerciseRepo(t, r)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestArtifactRepoPG(t *testing.T) {
	dsn := os.Getenv("HUFF_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("HUFF_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, Migrate(ctx, pool))

	exerciseRepo(t, NewArtifactRepoPG(pool))
}
