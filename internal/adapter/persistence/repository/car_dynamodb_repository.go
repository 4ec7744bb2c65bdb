package repository

import (
	"context"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCarsTableName = "cars"
	carsUserIDIndex      = "user_id-index"
)

type carItem struct {
	ID       string `dynamodbav:"id"`
	UserID   string `dynamodbav:"user_id"`
	Brand    string `dynamodbav:"brand"`
	Model    string `dynamodbav:"model"`
	Version  string `dynamodbav:"version,omitempty"`
	CarClass string `dynamodbav:"car_class,omitempty"`
}

// CarDynamoRepository persists Car entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type CarDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICarRepository = (*CarDynamoRepository)(nil)

func NewCarDynamoRepository(ddb *dynamodb.Client) *CarDynamoRepository {
	return &CarDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARS_TABLE", defaultCarsTableName),
	}
}

func (r *CarDynamoRepository) Create(ctx context.Context, c entities.Car) (entities.Car, error) {
	av, err := attributevalue.MarshalMap(carItem(c))
	if err != nil {
		return entities.Car{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.Car{}, err
	}
	return c, nil
}

func (r *CarDynamoRepository) GetByID(ctx context.Context, id string) (entities.Car, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return entities.Car{}, err
	}
	if len(out.Item) == 0 {
		return entities.Car{}, nil
	}
	var it carItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Car{}, err
	}
	return entities.Car(it), nil
}

func (r *CarDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Car, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(carsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	cars := make([]entities.Car, 0, len(out.Items))
	for _, raw := range out.Items {
		var it carItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cars = append(cars, entities.Car(it))
	}
	return cars, nil
}

func (r *CarDynamoRepository) Update(ctx context.Context, c entities.Car) (entities.Car, error) {
	av, err := attributevalue.MarshalMap(carItem(c))
	if err != nil {
		return entities.Car{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		return entities.Car{}, err
	}
	return c, nil
}

func (r *CarDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}},
	})
	return err
}
