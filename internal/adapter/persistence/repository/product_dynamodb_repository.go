package repository

import (
	"context"
	"fmt"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	productsEventIDIndex     = "event_id-index"
)

type productItem struct {
	ID            string `dynamodbav:"id"`
	EventID       string `dynamodbav:"event_id"`
	Name          string `dynamodbav:"name"`
	PriceCents    int64  `dynamodbav:"price_cents"`
	NumberDays    int    `dynamodbav:"number_days,omitempty"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	FinalDate     string `dynamodbav:"final_date,omitempty"`
	Tier          string `dynamodbav:"tier,omitempty"`
	Quantity      *int   `dynamodbav:"quantity,omitempty"`
	IsFirstDriver bool   `dynamodbav:"is_first_driver"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: event_id-index (PK: event_id)
//
// The decrement direction of quantity lives in the order-creation transaction
// (see OrderDynamoRepository.CreateWithReservation); this repository only
// increments, for restock on pre-payment order deletion.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// FindByIDs resolves a cart's product ids. Unknown ids are simply absent from
// the result; the caller decides whether a partial match is fatal. Duplicate
// ids are requested once (BatchGetItem rejects duplicate keys).
func (r *ProductDynamoRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(ids))
	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}})
	}

	products := make([]entities.Product, 0, len(keys))
	for len(keys) > 0 {
		out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Responses[r.tableName] {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		keys = out.UnprocessedKeys[r.tableName].Keys
	}
	return products, nil
}

func (r *ProductDynamoRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsEventIDIndex),
		KeyConditionExpression: aws.String("event_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(out.Items))
	for _, raw := range out.Items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

// IncrementQuantity atomically restores tracked stock. It never creates the
// quantity attribute: untracked tiers stay untracked.
func (r *ProductDynamoRepository) IncrementQuantity(ctx context.Context, id string, by int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
		UpdateExpression:    aws.String("SET quantity = quantity + :q"),
		ConditionExpression: aws.String("attribute_exists(id) AND attribute_exists(quantity)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", by)},
		},
	})
	return err
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	return err
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:            p.ID,
		EventID:       p.EventID,
		Name:          p.Name,
		PriceCents:    p.PriceCents,
		NumberDays:    p.NumberDays,
		StartDate:     p.StartDate,
		FinalDate:     p.FinalDate,
		Tier:          p.Tier,
		Quantity:      p.Quantity,
		IsFirstDriver: p.IsFirstDriver,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Product{
		ID:            it.ID,
		EventID:       it.EventID,
		Name:          it.Name,
		PriceCents:    it.PriceCents,
		NumberDays:    it.NumberDays,
		StartDate:     it.StartDate,
		FinalDate:     it.FinalDate,
		Tier:          it.Tier,
		Quantity:      it.Quantity,
		IsFirstDriver: it.IsFirstDriver,
		CreatedAt:     createdAt,
	}
}
