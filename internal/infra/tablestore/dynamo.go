package tablestore

import (
	"context"
	"errors"

	"locadora-api/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	partitionKeyAttr = "PK"
	rowKeyAttr       = "SK"
)

// DynamoStore implements Store on a single DynamoDB table with a string
// hash key PK (partition group) and string range key SK (row key).
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{
		client: client,
		table:  table,
	}
}

func (s *DynamoStore) Create(ctx context.Context, partition, row string, item any) error {
	av, err := s.marshalItem(partition, row, item)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemExists
		}
		return errs.Wrap(err, "put item")
	}
	return nil
}

func (s *DynamoStore) Get(ctx context.Context, partition, row string, out any) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       itemKey(partition, row),
	})
	if err != nil {
		return errs.Wrap(err, "get item")
	}
	if len(result.Item) == 0 {
		return ErrItemNotFound
	}

	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return errs.Wrap(err, "unmarshal item")
	}
	return nil
}

func (s *DynamoStore) Merge(ctx context.Context, partition, row string, attrs map[string]any) error {
	// An update expression without Set clauses fails to build, so an empty
	// merge degrades to an existence check, matching the memory twin.
	if len(attrs) == 0 {
		return s.exists(ctx, partition, row)
	}

	var update expression.UpdateBuilder
	for name, value := range attrs {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return errs.Wrap(err, "build update expression")
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       itemKey(partition, row),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConditionExpression:       aws.String("attribute_exists(SK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return errs.Wrap(err, "update item")
	}
	return nil
}

func (s *DynamoStore) exists(ctx context.Context, partition, row string) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(s.table),
		Key:                  itemKey(partition, row),
		ProjectionExpression: aws.String(rowKeyAttr),
	})
	if err != nil {
		return errs.Wrap(err, "get item")
	}
	if len(result.Item) == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *DynamoStore) Replace(ctx context.Context, partition, row string, item any) error {
	av, err := s.marshalItem(partition, row, item)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return errs.Wrap(err, "put item")
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, partition, row string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.table),
		Key:                 itemKey(partition, row),
		ConditionExpression: aws.String("attribute_exists(SK)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return errs.Wrap(err, "delete item")
	}
	return nil
}

func (s *DynamoStore) Query(ctx context.Context, partition string, filter Filter, out any) error {
	builder := expression.NewBuilder().
		WithKeyCondition(expression.Key(partitionKeyAttr).Equal(expression.Value(partition)))

	if len(filter) > 0 {
		var cond expression.ConditionBuilder
		first := true
		for name, value := range filter {
			eq := expression.Name(name).Equal(expression.Value(value))
			if first {
				cond = eq
				first = false
			} else {
				cond = cond.And(eq)
			}
		}
		builder = builder.WithFilter(cond)
	}

	expr, err := builder.Build()
	if err != nil {
		return errs.Wrap(err, "build query expression")
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return errs.Wrap(err, "query partition")
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return errs.Wrap(err, "unmarshal items")
	}
	return nil
}

func (s *DynamoStore) marshalItem(partition, row string, item any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errs.Wrap(err, "marshal item")
	}
	av[partitionKeyAttr] = &types.AttributeValueMemberS{Value: partition}
	av[rowKeyAttr] = &types.AttributeValueMemberS{Value: row}
	return av, nil
}

func itemKey(partition, row string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		partitionKeyAttr: &types.AttributeValueMemberS{Value: partition},
		rowKeyAttr:       &types.AttributeValueMemberS{Value: row},
	}
}
