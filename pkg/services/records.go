package services

import (
	"context"
	"encoding/json"

	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/normalize"
)

// single extracts one record from a response body. The record may be the
// body itself or wrapped in one of fields.
func single(body []byte, fields ...string) (normalize.Record, bool) {
	rec, ok := normalize.Parse(json.RawMessage(body))
	if !ok {
		return nil, false
	}

	for _, field := range fields {
		if inner, ok := normalize.Parse(rec[field]); ok {
			return inner, true
		}
	}
	return rec, true
}

type lister interface {
	ids(ctx context.Context) (map[int64]struct{}, error)
}

// references verifies foreign keys against a fresh list of the referenced
// resource.
type references struct {
	listers map[string]lister
}

func (r references) check(ctx context.Context, payload models.Payload) error {
	fetched := map[string]map[int64]struct{}{}

	for _, ref := range payload.References() {
		ids, ok := fetched[ref.Resource]
		if !ok {
			l, known := r.listers[ref.Resource]
			if !known {
				continue
			}

			var err error
			ids, err = l.ids(ctx)
			if err != nil {
				return err
			}
			fetched[ref.Resource] = ids
		}

		if _, ok := ids[ref.ID]; !ok {
			return apierrors.Local("%s: %s %d does not exist", ref.Field, singular(ref.Resource), ref.ID)
		}
	}

	return nil
}

func singular(resource string) string {
	switch resource {
	case models.CategoriesResource:
		return "category"
	case models.AccountsResource:
		return "account"
	}
	return resource
}
