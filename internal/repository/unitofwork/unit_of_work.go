package unitofwork

import (
	"context"

	"roombuddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PostRepository() contract.PostRepository
	ConnectionRepository() contract.ConnectionRepository
	PaymentRepository() contract.PaymentRepository
}
