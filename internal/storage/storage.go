// storage задаёт контракты работы с БД и общие ошибки хранилища.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pribylovaa/library-management-api/internal/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email пользователя).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя. Возвращает ErrAlreadyExists,
	// если email уже занят (уникальный индекс в БД закрывает гонку
	// check-then-insert).
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// BookStorage выполняет операции над книгами.
type BookStorage interface {
	SaveBook(ctx context.Context, book *models.Book) error
	Books(ctx context.Context) ([]models.Book, error)
	BookByID(ctx context.Context, id uuid.UUID) (*models.Book, error)
	UpdateBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id uuid.UUID) error
}

// CategoryStorage выполняет операции над категориями.
type CategoryStorage interface {
	SaveCategory(ctx context.Context, category *models.Category) error
	Categories(ctx context.Context) ([]models.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ShelfStorage выполняет операции над стеллажами.
type ShelfStorage interface {
	SaveShelf(ctx context.Context, shelf *models.Shelf) error
	Shelves(ctx context.Context) ([]models.Shelf, error)
	ShelfByID(ctx context.Context, id uuid.UUID) (*models.Shelf, error)
	UpdateShelf(ctx context.Context, shelf *models.Shelf) error
	DeleteShelf(ctx context.Context, id uuid.UUID) error
}

// LibrarianStorage выполняет операции над сотрудниками.
type LibrarianStorage interface {
	SaveLibrarian(ctx context.Context, librarian *models.Librarian) error
	Librarians(ctx context.Context) ([]models.Librarian, error)
	LibrarianByID(ctx context.Context, id uuid.UUID) (*models.Librarian, error)
	UpdateLibrarian(ctx context.Context, librarian *models.Librarian) error
	DeleteLibrarian(ctx context.Context, id uuid.UUID) error
}

// TransactionStorage выполняет операции над выдачами книг.
type TransactionStorage interface {
	SaveTransaction(ctx context.Context, tr *models.Transaction) error
	Transactions(ctx context.Context) ([]models.Transaction, error)
	TransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tr *models.Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// FineStorage выполняет операции над штрафами.
type FineStorage interface {
	SaveFine(ctx context.Context, fine *models.Fine) error
	Fines(ctx context.Context) ([]models.Fine, error)
	FineByID(ctx context.Context, id uuid.UUID) (*models.Fine, error)
	UpdateFine(ctx context.Context, fine *models.Fine) error
	DeleteFine(ctx context.Context, id uuid.UUID) error
}

// Storage задаёт полный контракт работы с БД.
type Storage interface {
	UserStorage
	BookStorage
	CategoryStorage
	ShelfStorage
	LibrarianStorage
	TransactionStorage
	FineStorage
	Close()
}
