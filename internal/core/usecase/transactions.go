package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateTransactionUseCase struct {
	transactions port.TransactionRepositoryPort
	listings     port.ListingStoragePort
}

func NewCreateTransactionUseCase(transactions port.TransactionRepositoryPort, listings port.ListingStoragePort) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{transactions: transactions, listings: listings}
}

func (uc *CreateTransactionUseCase) Execute(ctx context.Context, actor *domain.Claims, tx *domain.Transaction) (*domain.Transaction, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateTransaction"})

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	listing, err := uc.listings.FindByID(ctx, tx.ListingID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		vErr := domain.NewValidationError()
		vErr.Add("listing_id", "listing does not exist")
		return nil, vErr
	}

	vErr := domain.NewValidationError()
	if tx.Amount <= 0 {
		vErr.Add("amount", "must be > 0")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	tx.ID = uuid.New()
	tx.BuyerID = actor.UserID
	tx.SellerID = listing.UserID
	if tx.Status == "" {
		tx.Status = domain.TransactionPending
	}
	now := time.Now().UTC()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := uc.transactions.Create(ctx, tx); err != nil {
		ucLogger.Error("Repository failed to create transaction", err, nil)
		return nil, err
	}

	ucLogger.Info("Transaction created", port.Fields{"transaction_id": tx.ID.String()})
	return tx, nil
}

type ListTransactionsUseCase struct {
	transactions port.TransactionRepositoryPort
}

func NewListTransactionsUseCase(transactions port.TransactionRepositoryPort) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactions: transactions}
}

func (uc *ListTransactionsUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Transaction, int, error) {
	if actor == nil {
		return nil, 0, domain.ErrForbidden
	}
	// Видны только сделки, где пользователь — покупатель или продавец.
	return uc.transactions.ListByParticipant(ctx, actor.UserID, page.PerPage, page.Offset())
}
