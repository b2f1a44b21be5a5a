package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "bookshelf/internal/errors"
	"bookshelf/internal/model"
	"bookshelf/internal/repository"
)

// BookService handles catalog operations.
type BookService interface {
	List(ctx context.Context) ([]model.Book, error)
	Get(ctx context.Context, id uint) (*model.Book, error)
	Create(ctx context.Context, title, author string, isbn *string, publicationYear *int) (*model.Book, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type bookService struct {
	bookRepo repository.BookRepository
}

// NewBookService creates a new book service.
func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) List(ctx context.Context) ([]model.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *bookService) Get(ctx context.Context, id uint) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return book, nil
}

// Create adds a catalog entry. New books are always available.
func (s *bookService) Create(ctx context.Context, title, author string, isbn *string, publicationYear *int) (*model.Book, error) {
	if publicationYear != nil && *publicationYear > time.Now().Year() {
		return nil, fmt.Errorf("%w: publication_year cannot be in the future", apperrors.ErrValidation)
	}

	if isbn != nil {
		existing, err := s.bookRepo.FindByISBN(ctx, *isbn)
		if err == nil && existing != nil {
			return nil, apperrors.ErrDuplicateISBN
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check isbn: %w", err)
		}
	}

	book := &model.Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Available:       true,
		PublicationYear: publicationYear,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateISBN
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	return book, nil
}

// Delete removes a book by id and returns the number of rows affected.
// Deleting an id that matches nothing is not an error; callers surface the
// zero count instead.
func (s *bookService) Delete(ctx context.Context, id uint) (int64, error) {
	changes, err := s.bookRepo.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete book: %w", err)
	}
	return changes, nil
}
