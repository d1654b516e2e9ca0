package unitofwork

import (
	"context"

	"child-screening-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one request, optionally inside
// a transaction. The questionnaire -> score -> result chain runs under
// Begin/Commit so its causally ordered writes land together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ScreeningRepository() contract.ScreeningRepository
	ResultRepository() contract.ResultRepository
}
