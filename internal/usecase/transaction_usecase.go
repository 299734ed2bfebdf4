package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// ITransactionUseCase records resolved payment attempts and serves them back.
//
//go:generate mockgen -source=transaction_usecase.go -destination=../adapter/http/handlers/mocks/transaction_usecase_mock.go -package=mocks
type ITransactionUseCase interface {
	Record(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
}

type TransactionUseCase struct {
	repo   interfaces.ITransactionRepository
	events interfaces.ITransactionEventPublisher
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

// NewTransactionUseCase accepts a nil publisher when events are disabled.
func NewTransactionUseCase(repo interfaces.ITransactionRepository, events interfaces.ITransactionEventPublisher) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, events: events}
}

// Record persists the transaction and then publishes transaction.completed.
// A publish failure is logged only; the record is already stored.
func (u *TransactionUseCase) Record(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	log.Printf("[transaction][usecase] record start transaction_id=%s status=%s", t.ID, t.Status)
	if strings.TrimSpace(t.ID) == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}
	if u.repo == nil {
		log.Printf("[transaction][usecase] repository not configured transaction_id=%s", t.ID)
		return entities.Transaction{}, errors.New("transaction repository not configured")
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[transaction][usecase] repository create failed transaction_id=%s err=%v", t.ID, err)
		return entities.Transaction{}, err
	}

	if u.events != nil {
		if err := u.events.PublishTransactionCompleted(ctx, created); err != nil {
			log.Printf("[transaction][usecase] publish failed transaction_id=%s err=%v", created.ID, err)
		}
	}
	log.Printf("[transaction][usecase] record success transaction_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}
