package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"dinedir/internal/errors"
	"dinedir/internal/model"
	"dinedir/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestRestaurantService_CreateListing(t *testing.T) {
	input := CreateListingInput{
		Name:      "Taco Corner",
		Address:   "88 Mission St",
		OpenTime:  "09:00",
		CloseTime: "21:00",
		Menu:      `[{"name":"Tacos","items":[{"name":"Al Pastor","price":4.5}]}]`,
	}

	tests := []struct {
		name          string
		role          model.Role
		input         CreateListingInput
		setupMock     func(*MockRestaurantRepository)
		expectedError error
		expectedPrice string
	}{
		{
			name:  "owner creates listing with derived price tier",
			role:  model.RoleOwner,
			input: input,
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByNameAndAddress", mock.Anything, "Taco Corner", "88 Mission St").
					Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Restaurant")).Return(nil)
			},
			expectedPrice: model.PriceTierCheap,
		},
		{
			name:          "plain user is rejected",
			role:          model.RoleUser,
			input:         input,
			setupMock:     func(m *MockRestaurantRepository) {},
			expectedError: errors.ErrOwnerOnly,
		},
		{
			name:          "admin is rejected",
			role:          model.RoleAdmin,
			input:         input,
			setupMock:     func(m *MockRestaurantRepository) {},
			expectedError: errors.ErrOwnerOnly,
		},
		{
			name:  "duplicate name and address is rejected",
			role:  model.RoleOwner,
			input: input,
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByNameAndAddress", mock.Anything, "Taco Corner", "88 Mission St").
					Return(&model.Restaurant{ID: 9, Name: "Taco Corner"}, nil)
			},
			expectedError: errors.ErrDuplicateListing,
		},
		{
			name: "malformed open time is rejected",
			role: model.RoleOwner,
			input: CreateListingInput{
				Name: "Taco Corner", Address: "88 Mission St",
				OpenTime: "9am", CloseTime: "21:00",
			},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByNameAndAddress", mock.Anything, "Taco Corner", "88 Mission St").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidTimeFormat,
		},
		{
			name: "open after close is rejected",
			role: model.RoleOwner,
			input: CreateListingInput{
				Name: "Taco Corner", Address: "88 Mission St",
				OpenTime: "14:00", CloseTime: "13:00",
			},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByNameAndAddress", mock.Anything, "Taco Corner", "88 Mission St").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidSchedule,
		},
		{
			name: "open equal to close is rejected",
			role: model.RoleOwner,
			input: CreateListingInput{
				Name: "Taco Corner", Address: "88 Mission St",
				OpenTime: "13:00", CloseTime: "13:00",
			},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByNameAndAddress", mock.Anything, "Taco Corner", "88 Mission St").
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRestaurantRepository)
			tt.setupMock(mockRepo)

			svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
			restaurant, err := svc.CreateListing(context.Background(), 7, tt.role, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, restaurant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, restaurant)
				assert.Equal(t, uint(7), restaurant.OwnerID)
				assert.Equal(t, tt.expectedPrice, restaurant.Price)
				assert.Equal(t, model.RestaurantStatusOpen, restaurant.Status)
				assert.Zero(t, restaurant.Rating)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRestaurantService_UpdateListing(t *testing.T) {
	existing := &model.Restaurant{ID: 3, Name: "Taco Corner", OwnerID: 7, Price: "$"}

	tests := []struct {
		name          string
		callerID      uint
		role          model.Role
		input         UpdateListingInput
		setupMock     func(*MockRestaurantRepository)
		expectedError error
	}{
		{
			name:     "owner updates description",
			callerID: 7,
			role:     model.RoleOwner,
			input:    UpdateListingInput{Description: strPtr("New patio seating")},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
				m.On("UpdateFields", mock.Anything, uint(3), map[string]interface{}{
					"description": "New patio seating",
				}).Return(nil)
			},
		},
		{
			name:     "menu change re-derives price over explicit price",
			callerID: 7,
			role:     model.RoleOwner,
			input: UpdateListingInput{
				Price: strPtr("$"),
				Menu:  strPtr(`[{"name":"Tasting","items":[{"name":"Seven Course","price":125}]}]`),
			},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
				m.On("UpdateFields", mock.Anything, uint(3), map[string]interface{}{
					"menu":  `[{"name":"Tasting","items":[{"name":"Seven Course","price":125}]}]`,
					"price": "$$$",
				}).Return(nil)
			},
		},
		{
			name:     "malformed open time on update is rejected",
			callerID: 7,
			role:     model.RoleOwner,
			input:    UpdateListingInput{OpenTime: strPtr("25:61")},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
			},
			expectedError: errors.ErrInvalidTimeFormat,
		},
		{
			name:     "another owner is rejected",
			callerID: 8,
			role:     model.RoleOwner,
			input:    UpdateListingInput{Description: strPtr("hijacked")},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
			},
			expectedError: errors.ErrNotListingOwner,
		},
		{
			name:     "admin is rejected",
			callerID: 1,
			role:     model.RoleAdmin,
			input:    UpdateListingInput{Description: strPtr("edited")},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(existing, nil)
			},
			expectedError: errors.ErrOwnerOnly,
		},
		{
			name:     "missing listing returns not found",
			callerID: 7,
			role:     model.RoleOwner,
			input:    UpdateListingInput{Description: strPtr("gone")},
			setupMock: func(m *MockRestaurantRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRestaurantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRestaurantRepository)
			tt.setupMock(mockRepo)

			svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
			restaurant, err := svc.UpdateListing(context.Background(), 3, tt.callerID, tt.role, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, restaurant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, restaurant)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRestaurantService_DeleteListing(t *testing.T) {
	existing := &model.Restaurant{ID: 5, Name: "The Gilded Fork", OwnerID: 7}

	t.Run("owner delete cascades to reviews", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)

		txRestaurants := new(MockRestaurantRepository)
		txReviews := new(MockReviewRepository)
		txReviews.On("DeleteByRestaurant", mock.Anything, uint(5)).Return(nil)
		txRestaurants.On("Delete", mock.Anything, uint(5)).Return(nil)

		txm := &MockTxManager{repos: repository.Repositories{
			Restaurants: txRestaurants,
			Reviews:     txReviews,
		}}
		txm.On("WithTransaction", mock.Anything).Return(nil)

		svc := NewRestaurantService(mockRepo, txm, nil)
		err := svc.DeleteListing(context.Background(), 5, 7, model.RoleOwner)

		assert.NoError(t, err)
		txReviews.AssertExpectations(t)
		txRestaurants.AssertExpectations(t)
	})

	t.Run("another owner is rejected", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		err := svc.DeleteListing(context.Background(), 5, 8, model.RoleOwner)

		assert.Equal(t, errors.ErrNotListingOwner, err)
	})

	t.Run("missing listing returns not found", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		err := svc.DeleteListing(context.Background(), 5, 7, model.RoleOwner)

		assert.Equal(t, errors.ErrRestaurantNotFound, err)
	})
}

func TestRestaurantService_AdminDeleteListing(t *testing.T) {
	t.Run("admin deletes any listing", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).
			Return(&model.Restaurant{ID: 5, OwnerID: 7}, nil)

		txRestaurants := new(MockRestaurantRepository)
		txReviews := new(MockReviewRepository)
		txReviews.On("DeleteByRestaurant", mock.Anything, uint(5)).Return(nil)
		txRestaurants.On("Delete", mock.Anything, uint(5)).Return(nil)

		txm := &MockTxManager{repos: repository.Repositories{
			Restaurants: txRestaurants,
			Reviews:     txReviews,
		}}
		txm.On("WithTransaction", mock.Anything).Return(nil)

		svc := NewRestaurantService(mockRepo, txm, nil)
		assert.NoError(t, svc.AdminDeleteListing(context.Background(), 5, model.RoleAdmin))
		txReviews.AssertExpectations(t)
	})

	t.Run("owner is rejected before any lookup", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		err := svc.AdminDeleteListing(context.Background(), 5, model.RoleOwner)

		assert.Equal(t, errors.ErrAdminOnly, err)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing listing returns not found", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		err := svc.AdminDeleteListing(context.Background(), 5, model.RoleAdmin)

		assert.Equal(t, errors.ErrRestaurantNotFound, err)
	})
}

func TestRestaurantService_RemoveDuplicates(t *testing.T) {
	t.Run("earliest-created listing survives", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("List", mock.Anything).Return([]model.Restaurant{
			{ID: 3, Name: "Taco Corner"},
			{ID: 1, Name: "Taco Corner"},
			{ID: 7, Name: "Taco Corner"},
			{ID: 4, Name: "The Gilded Fork"},
		}, nil)

		txRestaurants := new(MockRestaurantRepository)
		txReviews := new(MockReviewRepository)
		for _, id := range []uint{3, 7} {
			txReviews.On("DeleteByRestaurant", mock.Anything, id).Return(nil)
			txRestaurants.On("Delete", mock.Anything, id).Return(nil)
		}

		txm := &MockTxManager{repos: repository.Repositories{
			Restaurants: txRestaurants,
			Reviews:     txReviews,
		}}
		txm.On("WithTransaction", mock.Anything).Return(nil)

		svc := NewRestaurantService(mockRepo, txm, nil)
		deleted, err := svc.RemoveDuplicates(context.Background(), model.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, 2, deleted)
		txRestaurants.AssertNotCalled(t, "Delete", mock.Anything, uint(1))
		txRestaurants.AssertNotCalled(t, "Delete", mock.Anything, uint(4))
		txReviews.AssertExpectations(t)
		txRestaurants.AssertExpectations(t)
	})

	t.Run("no duplicates is a no-op", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("List", mock.Anything).Return([]model.Restaurant{
			{ID: 1, Name: "Taco Corner"},
			{ID: 2, Name: "The Gilded Fork"},
		}, nil)

		txm := new(MockTxManager)
		svc := NewRestaurantService(mockRepo, txm, nil)
		deleted, err := svc.RemoveDuplicates(context.Background(), model.RoleAdmin)

		assert.NoError(t, err)
		assert.Zero(t, deleted)
		txm.AssertNotCalled(t, "WithTransaction", mock.Anything)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		deleted, err := svc.RemoveDuplicates(context.Background(), model.RoleOwner)

		assert.Equal(t, errors.ErrAdminOnly, err)
		assert.Zero(t, deleted)
		mockRepo.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestRestaurantService_ListOwned(t *testing.T) {
	t.Run("owner sees only their listings", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("ListByOwner", mock.Anything, uint(7)).Return([]model.Restaurant{
			{ID: 1, OwnerID: 7},
		}, nil)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		listings, err := svc.ListOwned(context.Background(), 7, model.RoleOwner)

		assert.NoError(t, err)
		assert.Len(t, listings, 1)
	})

	t.Run("plain user is rejected", func(t *testing.T) {
		svc := NewRestaurantService(new(MockRestaurantRepository), new(MockTxManager), nil)
		_, err := svc.ListOwned(context.Background(), 7, model.RoleUser)
		assert.Equal(t, errors.ErrOwnerOnly, err)
	})
}

func TestRestaurantService_GetMenu(t *testing.T) {
	t.Run("parses the stored menu document", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Restaurant{
			ID:   1,
			Menu: `[{"name":"Tacos","items":[{"name":"Al Pastor","price":4.5}]}]`,
		}, nil)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		categories, err := svc.GetMenu(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.Equal(t, "Tacos", categories[0].Name)
	})

	t.Run("unparsable menu surfaces a parse error", func(t *testing.T) {
		mockRepo := new(MockRestaurantRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Restaurant{
			ID:   1,
			Menu: "not json",
		}, nil)

		svc := NewRestaurantService(mockRepo, new(MockTxManager), nil)
		_, err := svc.GetMenu(context.Background(), 1)

		assert.Equal(t, errors.ErrMenuParse, err)
	})
}
