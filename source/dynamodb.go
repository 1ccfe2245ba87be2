package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hupe1980/tabview/record"
	"github.com/hupe1980/tabview/resource"
)

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DDBClient = (*dynamodb.Client)(nil)

type ddbOptions struct {
	fields     []string
	controller *resource.Controller
	pageLimit  int32
}

// DDBOption configures a DynamoDB source.
type DDBOption func(*ddbOptions)

// WithAttributes projects the scan onto the given attributes and uses them as
// the column order. Without it the schema is the sorted attribute names of the
// first item.
func WithAttributes(names ...string) DDBOption {
	return func(o *ddbOptions) {
		o.fields = names
	}
}

// WithScanController limits the scan through a resource controller.
func WithScanController(c *resource.Controller) DDBOption {
	return func(o *ddbOptions) {
		o.controller = c
	}
}

// WithPageLimit sets the maximum number of items evaluated per scan page.
func WithPageLimit(n int32) DDBOption {
	return func(o *ddbOptions) {
		o.pageLimit = n
	}
}

// DynamoDB loads every item of a table with a paginated scan.
//
// Supported attribute types are S, N, BOOL and NULL. Any other type fails the
// load with ErrUnsupportedValue.
type DynamoDB struct {
	client    DDBClient
	tableName string
	opts      ddbOptions
}

// NewDynamoDB creates a source scanning tableName.
func NewDynamoDB(client DDBClient, tableName string, optFns ...DDBOption) *DynamoDB {
	var opts ddbOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &DynamoDB{client: client, tableName: tableName, opts: opts}
}

// Load scans the table.
func (d *DynamoDB) Load(ctx context.Context) (Table, error) {
	rc := d.opts.controller
	if err := rc.AcquireLoad(ctx); err != nil {
		return Table{}, err
	}
	defer rc.ReleaseLoad()

	paginator := dynamodb.NewScanPaginator(d.client, d.scanInput())

	var t Table
	if len(d.opts.fields) > 0 {
		t.Schema = record.Schema(d.opts.fields)
	}

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return Table{}, fmt.Errorf("failed to scan DynamoDB table %s: %w", d.tableName, err)
		}
		for _, item := range page.Items {
			r, err := ItemToRecord(item)
			if err != nil {
				return Table{}, fmt.Errorf("item %d: %w", len(t.Records), err)
			}
			t.Records = append(t.Records, r)
		}
	}
	return t, nil
}

func (d *DynamoDB) scanInput() *dynamodb.ScanInput {
	in := &dynamodb.ScanInput{
		TableName: aws.String(d.tableName),
	}
	if d.opts.pageLimit > 0 {
		in.Limit = aws.Int32(d.opts.pageLimit)
	}
	if len(d.opts.fields) > 0 {
		// Placeholders avoid clashes with reserved words such as "name".
		names := make(map[string]string, len(d.opts.fields))
		refs := make([]string, len(d.opts.fields))
		for i, f := range d.opts.fields {
			ref := fmt.Sprintf("#f%d", i)
			names[ref] = f
			refs[i] = ref
		}
		in.ProjectionExpression = aws.String(strings.Join(refs, ", "))
		in.ExpressionAttributeNames = names
	}
	return in
}

// ItemToRecord converts a DynamoDB item into a Record.
func ItemToRecord(item map[string]types.AttributeValue) (record.Record, error) {
	r := make(record.Record, len(item))
	for name, av := range item {
		v, err := attributeValue(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		r[name] = v
	}
	return r, nil
}

func attributeValue(av types.AttributeValue) (record.Value, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return record.String(v.Value), nil
	case *types.AttributeValueMemberN:
		return numberValue(json.Number(v.Value)), nil
	case *types.AttributeValueMemberBOOL:
		return record.Bool(v.Value), nil
	case *types.AttributeValueMemberNULL:
		return record.Null(), nil
	default:
		return record.Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, av)
	}
}
