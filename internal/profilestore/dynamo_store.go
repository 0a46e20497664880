package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/schema"
)

// statusTimeout bounds the table scan behind GetStatus.
const statusTimeout = 30 * time.Second

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// profileItem is the DynamoDB item layout. The partition key is PK.
type profileItem struct {
	ID              string    `dynamodbav:"PK"`
	Name            string    `dynamodbav:"Name"`
	Email           string    `dynamodbav:"Email,omitempty"`
	Department      string    `dynamodbav:"Department"`
	DepartmentKey   string    `dynamodbav:"DepartmentKey"`
	TeamCode        string    `dynamodbav:"TeamCode,omitempty"`
	Natural         []int     `dynamodbav:"Natural,omitempty"`
	Adaptive        []int     `dynamodbav:"Adaptive,omitempty"`
	PrimaryNatural  string    `dynamodbav:"PrimaryNatural"`
	PrimaryAdaptive string    `dynamodbav:"PrimaryAdaptive"`
	DrivingForces   string    `dynamodbav:"DrivingForces,omitempty"`
	CreatedAt       time.Time `dynamodbav:"CreatedAt"`
}

// DynamoStore keeps profiles in a DynamoDB table keyed by profile id.
type DynamoStore struct {
	Client    DynamoAPI
	TableName string
}

var _ contract.ProfileRepository = &DynamoStore{} // Compile-time check

// NewDynamoClient loads the default AWS configuration and builds a DynamoDB client.
// A non-empty endpoint points the client at DynamoDB Local or another compatible service.
func NewDynamoClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// CreateProfile puts a new item, refusing to overwrite an existing id.
func (s *DynamoStore) CreateProfile(ctx context.Context, p schema.Profile) error {
	item, err := toItem(p)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to marshal profile %s: %v", p.ID, err)
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("PROFILE: item with ID %s already exists", p.ID)
			return fmt.Errorf("%w: %s", contract.ErrDuplicateProfile, p.ID)
		}
		logging.Log.Errorf("PROFILE: failed to create profile: %v", err)
		return fmt.Errorf("failed to put profile: %w", err)
	}
	return nil
}

// GetProfile reads one item by id.
func (s *DynamoStore) GetProfile(ctx context.Context, id string) (schema.Profile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		return schema.Profile{}, fmt.Errorf("failed to marshal key: %w", err)
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("PROFILE: GetItem for ID %s failed: %v", id, err)
		return schema.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if out.Item == nil {
		return schema.Profile{}, fmt.Errorf("%w: %s", contract.ErrProfileNotFound, id)
	}
	return fromAttributes(out.Item), nil
}

// ListProfiles scans the table and filters in process.
func (s *DynamoStore) ListProfiles(ctx context.Context, filter schema.ProfileFilter) ([]schema.Profile, error) {
	profiles := make([]schema.Profile, 0)
	err := s.scan(ctx, func(item map[string]types.AttributeValue) {
		if p := fromAttributes(item); filter.Matches(p) {
			profiles = append(profiles, p)
		}
	})
	if err != nil {
		return nil, err
	}
	sortProfiles(profiles)
	return profiles, nil
}

// Revision scans the table for the count and latest createdAt.
func (s *DynamoStore) Revision(ctx context.Context) (schema.StoreRevision, error) {
	var rev schema.StoreRevision
	err := s.scan(ctx, func(item map[string]types.AttributeValue) {
		rev.Count++
		if p := fromAttributes(item); p.CreatedAt.After(rev.LatestAt) {
			rev.LatestAt = p.CreatedAt
		}
	})
	return rev, err
}

// GetStatus returns status information about the table.
func (s *DynamoStore) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(schema.DynamoDBBackend),
		Connected: s.Client != nil,
		Target:    s.TableName,
	}
	if s.Client == nil {
		return status, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), statusTimeout)
	defer cancel()

	depts := make(map[string]struct{})
	err := s.scan(ctx, func(item map[string]types.AttributeValue) {
		p := fromAttributes(item)
		status.TotalProfiles++
		depts[schema.NormalizeDepartment(p.Department)] = struct{}{}
		if status.OldestProfileAt.IsZero() || p.CreatedAt.Before(status.OldestProfileAt) {
			status.OldestProfileAt = p.CreatedAt
		}
		if p.CreatedAt.After(status.LatestProfileAt) {
			status.LatestProfileAt = p.CreatedAt
		}
	})
	status.Departments = int64(len(depts))
	return status, err
}

// Clear deletes every item in the table.
func (s *DynamoStore) Clear(ctx context.Context) (int, error) {
	var keys []map[string]types.AttributeValue
	err := s.scan(ctx, func(item map[string]types.AttributeValue) {
		if pk, ok := item["PK"]; ok {
			keys = append(keys, map[string]types.AttributeValue{"PK": pk})
		}
	})
	if err != nil {
		return 0, err
	}
	for i, key := range keys {
		if _, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{TableName: &s.TableName, Key: key}); err != nil {
			return i, fmt.Errorf("failed to delete profile: %w", err)
		}
	}
	logging.Log.Infof("PROFILE: deleted %d profiles from %s", len(keys), s.TableName)
	return len(keys), nil
}

// Close is a no-op; the AWS client holds no connection.
func (s *DynamoStore) Close() error { return nil }

func (s *DynamoStore) scan(ctx context.Context, visit func(map[string]types.AttributeValue)) error {
	paginator := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{TableName: &s.TableName})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logging.Log.Errorf("PROFILE: scan failed: %v", err)
			return fmt.Errorf("failed to scan profiles: %w", err)
		}
		for _, item := range page.Items {
			visit(item)
		}
	}
	return nil
}

func toItem(p schema.Profile) (profileItem, error) {
	item := profileItem{
		ID:              p.ID,
		Name:            p.Name,
		Email:           p.Email,
		Department:      p.Department,
		DepartmentKey:   schema.NormalizeDepartment(p.Department),
		TeamCode:        p.TeamCode,
		PrimaryNatural:  p.PrimaryNatural.String(),
		PrimaryAdaptive: p.PrimaryAdaptive.String(),
		CreatedAt:       p.CreatedAt.UTC(),
	}
	if p.Natural != nil {
		item.Natural = p.Natural[:]
	}
	if p.Adaptive != nil {
		item.Adaptive = p.Adaptive[:]
	}
	if p.DrivingForces != nil {
		b, err := json.Marshal(p.DrivingForces)
		if err != nil {
			return item, fmt.Errorf("failed to encode driving forces: %w", err)
		}
		item.DrivingForces = string(b)
	}
	return item, nil
}

// fromAttributes decodes an item. Items that do not decode come back with only
// their id so that aggregation counts them as skipped.
func fromAttributes(av map[string]types.AttributeValue) schema.Profile {
	var item profileItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		var id string
		if pk, ok := av["PK"].(*types.AttributeValueMemberS); ok {
			id = pk.Value
		}
		logging.Log.Warnf("PROFILE: failed to unmarshal profile %s: %v", id, err)
		return schema.Profile{ID: id, PrimaryNatural: invalidTrait, PrimaryAdaptive: invalidTrait}
	}
	return fromItem(item)
}

func fromItem(item profileItem) schema.Profile {
	p := schema.Profile{
		ID:              item.ID,
		Name:            item.Name,
		Email:           item.Email,
		Department:      item.Department,
		TeamCode:        item.TeamCode,
		Natural:         scoresFromSlice(item.Natural),
		Adaptive:        scoresFromSlice(item.Adaptive),
		PrimaryNatural:  traitFromColumn(item.ID, item.PrimaryNatural),
		PrimaryAdaptive: traitFromColumn(item.ID, item.PrimaryAdaptive),
		CreatedAt:       item.CreatedAt.UTC(),
	}
	if item.DrivingForces != "" {
		var result schema.DrivingForceResult
		if err := json.Unmarshal([]byte(item.DrivingForces), &result); err != nil {
			logging.Log.Warnf("PROFILE: ignoring unreadable driving forces on %s: %v", item.ID, err)
		} else {
			p.DrivingForces = &result
		}
	}
	return p
}

func scoresFromSlice(v []int) *schema.Scores {
	if len(v) != schema.TraitCount {
		return nil
	}
	var s schema.Scores
	copy(s[:], v)
	return &s
}
