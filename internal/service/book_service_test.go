package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/model"
)

// MockBookRepository is a mock implementation of BookRepository.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) SetAvailability(ctx context.Context, id uint, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func TestBookService_Create(t *testing.T) {
	isbn := "9780441013593"
	futureYear := time.Now().Year() + 1
	pastYear := 1965

	tests := []struct {
		name          string
		isbn          *string
		year          *int
		setupMock     func(*MockBookRepository)
		expectedError error
	}{
		{
			name: "created available without isbn",
			setupMock: func(m *MockBookRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)
			},
		},
		{
			name: "created with isbn and year",
			isbn: &isbn,
			year: &pastYear,
			setupMock: func(m *MockBookRepository) {
				m.On("FindByISBN", mock.Anything, isbn).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)
			},
		},
		{
			name: "duplicate isbn",
			isbn: &isbn,
			setupMock: func(m *MockBookRepository) {
				m.On("FindByISBN", mock.Anything, isbn).Return(&model.Book{ID: 1}, nil)
			},
			expectedError: apperrors.ErrDuplicateISBN,
		},
		{
			name:          "publication year in the future",
			year:          &futureYear,
			setupMock:     func(m *MockBookRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBookRepository)
			tt.setupMock(mockRepo)

			svc := NewBookService(mockRepo)
			book, err := svc.Create(context.Background(), "Dune", "Frank Herbert", tt.isbn, tt.year)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, book)
				assert.True(t, book.Available)
				assert.Equal(t, "Dune", book.Title)
				assert.Equal(t, "Frank Herbert", book.Author)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookService_Get(t *testing.T) {
	mockRepo := new(MockBookRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Book{ID: 1, Title: "Dune"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewBookService(mockRepo)

	book, err := svc.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", book.Title)

	_, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)

	mockRepo.AssertExpectations(t)
}

func TestBookService_Delete(t *testing.T) {
	mockRepo := new(MockBookRepository)
	mockRepo.On("DeleteByID", mock.Anything, uint(1)).Return(int64(1), nil)
	mockRepo.On("DeleteByID", mock.Anything, uint(99)).Return(int64(0), nil)

	svc := NewBookService(mockRepo)

	changes, err := svc.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	// Unknown ids are not an error, they just match zero rows.
	changes, err = svc.Delete(context.Background(), 99)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), changes)

	mockRepo.AssertExpectations(t)
}

func TestBookService_List(t *testing.T) {
	mockRepo := new(MockBookRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Book{{ID: 1}, {ID: 2}}, nil)

	svc := NewBookService(mockRepo)

	books, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, books, 2)

	mockRepo.AssertExpectations(t)
}
