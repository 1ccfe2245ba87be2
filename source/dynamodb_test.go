package source

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDDB struct {
	mock.Mock
}

func (m *mockDDB) Scan(ctx context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*dynamodb.ScanOutput)
	return out, args.Error(1)
}

func user(id, name, role string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":   &types.AttributeValueMemberN{Value: id},
		"name": &types.AttributeValueMemberS{Value: name},
		"role": &types.AttributeValueMemberS{Value: role},
	}
}

func TestDynamoDB(t *testing.T) {
	ctx := context.Background()
	client := new(mockDDB)

	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return aws.ToString(in.TableName) == "users" && in.ExclusiveStartKey == nil
	})).Return(&dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{user("1", "John Doe", "Admin")},
		LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberN{Value: "1"}},
	}, nil).Once()
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return in.ExclusiveStartKey != nil
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{user("2", "Jane Smith", "User")},
	}, nil).Once()

	st, err := Open(ctx, NewDynamoDB(client, "users", WithPageLimit(1)))
	require.NoError(t, err)

	assert.Equal(t, 2, st.Len())
	assert.Equal(t, record.Schema{"id", "name", "role"}, st.Schema())
	assert.Equal(t, record.KindInt, st.At(0).Get("id").Kind)
	assert.Equal(t, "Jane Smith", st.At(1).Get("name").Text())
	client.AssertExpectations(t)
}

func TestDynamoDBProjection(t *testing.T) {
	client := new(mockDDB)
	client.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		return aws.ToString(in.ProjectionExpression) == "#f0, #f1" &&
			in.ExpressionAttributeNames["#f0"] == "name" &&
			in.ExpressionAttributeNames["#f1"] == "id"
	})).Return(&dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{user("1", "John Doe", "Admin")},
	}, nil).Once()

	tbl, err := NewDynamoDB(client, "users", WithAttributes("name", "id")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, record.Schema{"name", "id"}, tbl.Schema)
	assert.Equal(t, []string{"1"}, testutil.IDs(tbl.Records))
}

func TestItemToRecord(t *testing.T) {
	r, err := ItemToRecord(map[string]types.AttributeValue{
		"score":  &types.AttributeValueMemberN{Value: "2.5"},
		"active": &types.AttributeValueMemberBOOL{Value: true},
		"note":   &types.AttributeValueMemberNULL{Value: true},
	})
	require.NoError(t, err)
	assert.Equal(t, record.Float(2.5), r["score"])
	assert.Equal(t, record.Bool(true), r["active"])
	assert.True(t, r["note"].IsNull())

	_, err = ItemToRecord(map[string]types.AttributeValue{
		"tags": &types.AttributeValueMemberSS{Value: []string{"a"}},
	})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}
