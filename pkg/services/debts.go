package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/models"
)

// Debts is the data service for debts.
type Debts struct {
	*Resource[models.Debt, models.DebtEditable]
}

// ProcessPayment records a payment towards the debt and returns the debt
// with its updated balance.
func (d *Debts) ProcessPayment(ctx context.Context, id int64, payment models.DebtPayment) (models.Debt, error) {
	if id <= 0 {
		return models.Debt{}, apierrors.Local("%s: invalid id %d", d.Name(), id)
	}

	payload, err := payment.Payload()
	if err != nil {
		return models.Debt{}, err
	}

	resp, err := d.client.Post(ctx, strconv.FormatInt(id, 10)+"/process-payment", payload)
	if err != nil {
		return models.Debt{}, d.backend.classify(ctx, err)
	}

	if !resp.Empty() {
		if debt, err := d.decodeOne(ctx, resp.Body); err == nil {
			return debt, nil
		}
	}

	// The backend may answer with a receipt instead of the debt
	debts, err := d.List(ctx)
	if err != nil {
		return models.Debt{}, err
	}

	for _, debt := range debts {
		if debt.ID == id {
			return debt, nil
		}
	}
	return models.Debt{}, apierrors.Shape(fmt.Errorf("%s: debt %d not found after payment", d.Name(), id))
}
