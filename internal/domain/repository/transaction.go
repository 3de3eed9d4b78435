package repository

import "context"

// TransactionManager scopes a unit of work. Every repository obtained from
// the factory inside fn shares one transaction, committed only when fn
// returns nil.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewAdvertisementRepository() AdvertisementRepository
	NewReferenceRepository() ReferenceRepository
}
