package repository

import (
	"context"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfilesTableName = "profiles"
	profilesEmailIndex       = "email-index"
)

type profileItem struct {
	UserID                string `dynamodbav:"user_id"`
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name"`
	Email                 string `dynamodbav:"email"`
	Role                  string `dynamodbav:"role"`
	IsActive              bool   `dynamodbav:"is_active"`
	Username              string `dynamodbav:"username,omitempty"`
	CPF                   string `dynamodbav:"cpf,omitempty"`
	Phone                 string `dynamodbav:"phone,omitempty"`
	Birthdate             string `dynamodbav:"birthdate,omitempty"`
	EmergencyContactName  string `dynamodbav:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `dynamodbav:"emergency_contact_phone,omitempty"`
	CategoryMembership    string `dynamodbav:"category_membership,omitempty"`
	HasMembership         string `dynamodbav:"has_membership,omitempty"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB.
//
// Table requirements:
//   - PK: user_id (string, the identity provider uid)
//   - GSI: email-index (PK: email)

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"user_id": &types.AttributeValueMemberS{Value: userID}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Profile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesEmailIndex),
		KeyConditionExpression: aws.String("email = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Items) == 0 {
		return entities.Profile{}, nil
	}
	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) Update(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(user_id)"),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) List(ctx context.Context) ([]entities.Profile, error) {
	profiles := make([]entities.Profile, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it profileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			profiles = append(profiles, fromProfileItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return profiles, nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		UserID:                p.UserID,
		ID:                    p.ID,
		Name:                  p.Name,
		Email:                 p.Email,
		Role:                  string(p.Role),
		IsActive:              p.IsActive,
		Username:              p.Username,
		CPF:                   p.CPF,
		Phone:                 p.Phone,
		Birthdate:             p.Birthdate,
		EmergencyContactName:  p.EmergencyContactName,
		EmergencyContactPhone: p.EmergencyContactPhone,
		CategoryMembership:    p.CategoryMembership,
		HasMembership:         p.HasMembership,
		UpdatedAt:             p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Profile{
		UserID:                it.UserID,
		ID:                    it.ID,
		Name:                  it.Name,
		Email:                 it.Email,
		Role:                  entities.Role(it.Role),
		IsActive:              it.IsActive,
		Username:              it.Username,
		CPF:                   it.CPF,
		Phone:                 it.Phone,
		Birthdate:             it.Birthdate,
		EmergencyContactName:  it.EmergencyContactName,
		EmergencyContactPhone: it.EmergencyContactPhone,
		CategoryMembership:    it.CategoryMembership,
		HasMembership:         it.HasMembership,
		UpdatedAt:             updatedAt,
	}
}
