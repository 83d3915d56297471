package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"heartchain_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// UserService is the DynamoDB-backed user store. Users carry their profile,
// preferences and emergency contacts in a single item.
type UserService struct {
	Dynamo *DynamoService
}

// GetUser retrieves a user by id.
func (us *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := us.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// GetUserByWallet looks a user up through the wallet GSI. The address is
// matched lowercased, the form it is stored in.
func (us *UserService) GetUserByWallet(ctx context.Context, walletAddress string) (*models.User, error) {
	return us.queryOne(ctx, models.WalletIndex, "walletAddress = :walletAddress",
		map[string]types.AttributeValue{
			":walletAddress": &types.AttributeValueMemberS{Value: models.NormalizeWallet(walletAddress)},
		})
}

// GetUserByUsername looks a user up through the username GSI.
func (us *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return us.queryOne(ctx, models.UsernameIndex, "username = :username",
		map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		})
}

func (us *UserService) queryOne(ctx context.Context, index, keyCondition string, values map[string]types.AttributeValue) (*models.User, error) {
	items, err := us.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, index, keyCondition, values, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// uniqueMarker reserves a wallet address or username under a synthetic
// userId, so concurrent registrations collide on the write itself instead of
// racing the eventually-consistent GSIs. Markers carry neither walletAddress
// nor username attributes and therefore never surface in the lookup indexes.
type uniqueMarker struct {
	UserID string `dynamodbav:"userId"`
	RefID  string `dynamodbav:"refId"`
}

func walletMarkerID(walletAddress string) string {
	return "WALLET#" + walletAddress
}

func usernameMarkerID(username string) string {
	return "USERNAME#" + username
}

// CreateUser writes a new user with its embedded profile. The user item and
// the marker items for its wallet and username are written in one
// transaction; any of them already existing fails the whole write with
// ErrConflict.
func (us *UserService) CreateUser(ctx context.Context, user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	if user.CreatedAt == "" {
		user.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	user.WalletAddress = models.NormalizeWallet(user.WalletAddress)

	puts := []ConditionalPut{
		{
			TableName:           models.UsersTable,
			Item:                user,
			ConditionExpression: "attribute_not_exists(userId)",
		},
		{
			TableName:           models.UsersTable,
			Item:                uniqueMarker{UserID: walletMarkerID(user.WalletAddress), RefID: user.UserID},
			ConditionExpression: "attribute_not_exists(userId)",
		},
	}
	if user.Username != "" {
		puts = append(puts, ConditionalPut{
			TableName:           models.UsersTable,
			Item:                uniqueMarker{UserID: usernameMarkerID(user.Username), RefID: user.UserID},
			ConditionExpression: "attribute_not_exists(userId)",
		})
	}
	return us.Dynamo.TransactPutItems(ctx, puts)
}

// SaveUser overwrites the stored user item.
func (us *UserService) SaveUser(ctx context.Context, user *models.User) error {
	return us.Dynamo.PutItem(ctx, models.UsersTable, user)
}

// TouchLastLogin stamps the user's last login time.
func (us *UserService) TouchLastLogin(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	_, err := us.Dynamo.UpdateItem(ctx, models.UsersTable, "SET lastLogin = :lastLogin", key,
		map[string]types.AttributeValue{
			":lastLogin": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		}, nil)
	return err
}

// UpdateProfile replaces the user's profile attributes.
func (us *UserService) UpdateProfile(ctx context.Context, userID string, profile *models.Profile) (*models.User, error) {
	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Profile = profile
	if err := us.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePreferences replaces the user's suggestion preferences.
func (us *UserService) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (*models.User, error) {
	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Preferences = prefs
	if err := us.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddEmergencyContact appends a trusted contact to the user.
func (us *UserService) AddEmergencyContact(ctx context.Context, userID string, contact models.EmergencyContact) (*models.User, error) {
	if contact.Name == "" {
		return nil, fmt.Errorf("contact name is required: %w", ErrValidation)
	}

	user, err := us.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.EmergencyContacts = append(user.EmergencyContacts, contact)
	if err := us.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers scans every stored user except the one with excludeUserID.
// Uniqueness markers are skipped; candidate filtering happens in the
// suggestion service on the unmarshaled records.
func (us *UserService) ListUsers(ctx context.Context, excludeUserID string) ([]models.User, error) {
	var users []models.User
	err := us.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		idAttr, ok := item["userId"].(*types.AttributeValueMemberS)
		if !ok {
			return false
		}
		if strings.HasPrefix(idAttr.Value, "WALLET#") || strings.HasPrefix(idAttr.Value, "USERNAME#") {
			return false
		}
		return idAttr.Value != excludeUserID
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
