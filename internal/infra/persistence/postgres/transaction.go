// Package postgres persists the advertisement aggregate and its reference
// data with GORM on PostgreSQL.
package postgres

import (
	"context"

	"market/internal/domain/repository"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside gorm.DB.Transaction: an error or a panic from fn
// rolls back, anything else commits. fn's error is returned unchanged so
// domain errors keep their kind.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// txRepositories binds every repository it creates to tx.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewAdvertisementRepository() repository.AdvertisementRepository {
	return NewAdvertisementRepository(r.tx)
}

func (r txRepositories) NewReferenceRepository() repository.ReferenceRepository {
	return NewReferenceRepository(r.tx)
}
