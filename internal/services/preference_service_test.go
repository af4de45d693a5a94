package services

import (
	"context"
	"testing"

	"homeport/internal/common"
	"homeport/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Create(ctx context.Context, preference *models.Preference, zipcodes []string) error {
	args := m.Called(ctx, preference, zipcodes)
	return args.Error(0)
}

func (m *MockPreferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Preference), args.Error(1)
}

func (m *MockPreferenceRepository) ZipcodesByPreference(ctx context.Context, preferenceID uuid.UUID) ([]*models.Zipcode, error) {
	args := m.Called(ctx, preferenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Zipcode), args.Error(1)
}

func (m *MockPreferenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PreferenceServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserRepository
	mockPrefs *MockPreferenceRepository
	service   PreferenceService
}

func (suite *PreferenceServiceTestSuite) SetupTest() {
	suite.mockUsers = &MockUserRepository{}
	suite.mockPrefs = &MockPreferenceRepository{}
	suite.service = NewPreferenceService(suite.mockUsers, suite.mockPrefs)

	suite.mockUsers.Test(suite.T())
	suite.mockPrefs.Test(suite.T())
}

func (suite *PreferenceServiceTestSuite) TearDownTest() {
	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockPrefs.AssertExpectations(suite.T())
}

func TestPreferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceServiceTestSuite))
}

func (suite *PreferenceServiceTestSuite) TestAddPreference_Unauthenticated() {
	err := suite.service.AddPreference(context.Background(), &PreferenceCriteria{City: "Austin"})
	assert.ErrorIs(suite.T(), err, ErrUnauthenticated)
	suite.mockPrefs.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PreferenceServiceTestSuite) TestAddPreference_Success() {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	ctx := common.WithIdentity(context.Background(), &common.Identity{UserID: user.ID, Username: "alice"})

	suite.mockUsers.On("GetByUsername", ctx, "alice").Return(user, nil)
	suite.mockPrefs.On("Create", ctx, mock.AnythingOfType("*models.Preference"), []string{"90210", "90211"}).
		Return(nil).Run(func(args mock.Arguments) {
		preference := args.Get(1).(*models.Preference)
		assert.Equal(suite.T(), user.ID, preference.UserID)
		assert.NotEqual(suite.T(), uuid.Nil, preference.ID)
		assert.Equal(suite.T(), 100000, preference.MinPrice)
		assert.Equal(suite.T(), "Los Angeles", preference.City)
	})

	err := suite.service.AddPreference(ctx, &PreferenceCriteria{
		MinPrice: 100000,
		MaxPrice: 900000,
		Beds:     3,
		Baths:    2,
		MinArea:  1200,
		Type:     "SINGLE_FAMILY",
		City:     "Los Angeles",
		State:    "CA",
		Zipcodes: []string{"90210", "90211"},
	})
	assert.NoError(suite.T(), err)
}

func (suite *PreferenceServiceTestSuite) TestAddPreference_UnknownUser() {
	ctx := common.WithIdentity(context.Background(), &common.Identity{UserID: uuid.New(), Username: "ghost"})
	suite.mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, nil)

	err := suite.service.AddPreference(ctx, &PreferenceCriteria{City: "Austin"})
	assert.ErrorIs(suite.T(), err, ErrUserNotFound)
	suite.mockPrefs.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}
