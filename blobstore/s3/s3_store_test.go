package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/tabview/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockAPI) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.ListObjectsV2Output)
	return out, args.Error(1)
}

func TestStoreOpen(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	api.On("GetObject", ctx, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "tables/users.json"
	})).Return(&s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(`[]`)),
		ContentLength: aws.Int64(2),
	}, nil)

	store := NewStore(api, "bucket", "tables/")

	rc, err := store.Open(ctx, "users.json")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, int64(2), blobstore.SizeOf(rc))

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
	api.AssertExpectations(t)
}

func TestStoreOpenNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &types.NoSuchKey{}, blobstore.ErrNotFound},
		{"not found", &types.NotFound{}, blobstore.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockAPI)
			api.On("GetObject", mock.Anything, mock.Anything).Return(nil, tt.err)

			_, err := NewStore(api, "bucket", "").Open(context.Background(), "missing.json")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("other error", func(t *testing.T) {
		boom := errors.New("access denied")
		api := new(mockAPI)
		api.On("GetObject", mock.Anything, mock.Anything).Return(nil, boom)

		_, err := NewStore(api, "bucket", "").Open(context.Background(), "x.json")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	api := new(mockAPI)
	api.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return in.ContinuationToken == nil && aws.ToString(in.Prefix) == "tables/"
	})).Return(&s3.ListObjectsV2Output{
		Contents:              []types.Object{{Key: aws.String("tables/b.json")}},
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("next"),
	}, nil).Once()
	api.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return aws.ToString(in.ContinuationToken) == "next"
	})).Return(&s3.ListObjectsV2Output{
		Contents:    []types.Object{{Key: aws.String("tables/a.json")}},
		IsTruncated: aws.Bool(false),
	}, nil).Once()

	names, err := NewStore(api, "bucket", "tables/").List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
	api.AssertExpectations(t)
}
