package services

import (
	"context"

	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/normalize"
)

// Transactions is the data service for transactions.
type Transactions struct {
	*Resource[models.Transaction, models.TransactionEditable]
}

// Transfer moves money between two accounts. It returns the transactions
// the backend created for the transfer, which may be none.
func (t *Transactions) Transfer(ctx context.Context, transfer models.Transfer) ([]models.Transaction, error) {
	payload, err := transfer.Payload()
	if err != nil {
		return nil, err
	}

	if err := t.refs.check(ctx, payload); err != nil {
		return nil, err
	}

	resp, err := t.client.Post(ctx, "transfer", payload)
	if err != nil {
		return nil, t.backend.classify(ctx, err)
	}

	if resp.Empty() {
		return []models.Transaction{}, nil
	}

	envelope, err := normalize.Unwrap(resp.Body, t.field, "data", "items")
	if err == nil && envelope.Kind != normalize.Unrecognized {
		return t.decodeList(ctx, resp.Body)
	}

	// A single transaction, or a confirmation without records
	if tx, err := t.decodeOne(ctx, resp.Body); err == nil {
		return []models.Transaction{tx}, nil
	}
	return []models.Transaction{}, nil
}
