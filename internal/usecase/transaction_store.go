package usecase

import "storefront_checkout/internal/domain/entities"

// TransactionStore holds the outcome of the session's latest payment.
type TransactionStore struct {
	state entities.TransactionState
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{state: entities.NewTransactionState()}
}

func (s *TransactionStore) GetState() entities.TransactionState {
	return s.state
}

func (s *TransactionStore) SetTransaction(transactionID string, status entities.TransactionStatus) {
	id := transactionID
	s.state = entities.TransactionState{TransactionID: &id, Status: status}
}

func (s *TransactionStore) Reset() {
	s.state = entities.NewTransactionState()
}
