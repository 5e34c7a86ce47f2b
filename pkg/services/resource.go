package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/pocketledger/dashboard/pkg/apiclient"
	"github.com/pocketledger/dashboard/pkg/apierrors"
	"github.com/pocketledger/dashboard/pkg/models"
	"github.com/pocketledger/dashboard/pkg/normalize"
	"github.com/rs/zerolog"
)

// Editable is a form that can be validated into a backend payload.
type Editable interface {
	Payload(id int64) (models.Payload, error)
}

// Normalizer builds a canonical record from a backend record.
type Normalizer[T any] func(normalize.Record, time.Time) (T, bool)

// Resource is the data service of one backend resource.
type Resource[T any, E Editable] struct {
	backend   Backend
	client    *apiclient.Client
	field     string
	normalize Normalizer[T]
	id        func(T) int64
	refs      references
}

func newResource[T any, E Editable](b Backend, resource, field string, n Normalizer[T], id func(T) int64) *Resource[T, E] {
	return &Resource[T, E]{
		backend:   b,
		client:    b.client(resource),
		field:     field,
		normalize: n,
		id:        id,
	}
}

// Name returns the backend resource path.
func (r *Resource[T, E]) Name() string {
	return r.client.Resource()
}

// List returns all records of the resource. An empty collection is not an
// error. Records that cannot be identified are dropped.
func (r *Resource[T, E]) List(ctx context.Context) ([]T, error) {
	resp, err := r.client.Get(ctx, "")
	if err != nil {
		return nil, r.backend.classify(ctx, err)
	}

	return r.decodeList(ctx, resp.Body)
}

// Create validates the form and creates the record.
func (r *Resource[T, E]) Create(ctx context.Context, in E) (T, error) {
	var zero T

	payload, err := r.prepare(ctx, in, 0)
	if err != nil {
		return zero, err
	}

	resp, err := r.client.Post(ctx, "", payload)
	if err != nil {
		return zero, r.backend.classify(ctx, err)
	}

	if resp.Empty() {
		return r.newest(ctx)
	}

	return r.decodeOne(ctx, resp.Body)
}

// Update validates the form and replaces the record with the given id.
//
// Backends that answer with no content have accepted the payload as is, so
// the submitted record is returned.
func (r *Resource[T, E]) Update(ctx context.Context, id int64, in E) (T, error) {
	var zero T

	if id <= 0 {
		return zero, apierrors.Local("%s: invalid id %d", r.Name(), id)
	}

	payload, err := r.prepare(ctx, in, id)
	if err != nil {
		return zero, err
	}

	resp, err := r.client.Put(ctx, strconv.FormatInt(id, 10), payload)
	if err != nil {
		return zero, r.backend.classify(ctx, err)
	}

	if resp.Empty() {
		return r.fromPayload(payload)
	}

	return r.decodeOne(ctx, resp.Body)
}

// Remove deletes the record with the given id.
func (r *Resource[T, E]) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return apierrors.Local("%s: invalid id %d", r.Name(), id)
	}

	if _, err := r.client.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
		return r.backend.classify(ctx, err)
	}
	return nil
}

// prepare validates the form and checks its references. No request is
// sent for invalid forms.
func (r *Resource[T, E]) prepare(ctx context.Context, in E, id int64) (models.Payload, error) {
	payload, err := in.Payload(id)
	if err != nil {
		return nil, err
	}

	if err := r.refs.check(ctx, payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// ids returns the set of all record ids.
func (r *Resource[T, E]) ids(ctx context.Context) (map[int64]struct{}, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[int64]struct{}, len(records))
	for _, record := range records {
		ids[r.id(record)] = struct{}{}
	}
	return ids, nil
}

func (r *Resource[T, E]) decodeList(ctx context.Context, body []byte) ([]T, error) {
	envelope, err := normalize.Unwrap(body, r.field, "data", "items")
	if err != nil {
		return nil, apierrors.Shape(err)
	}

	logger := zerolog.Ctx(ctx).With().Str("resource", r.Name()).Logger()
	if envelope.Kind == normalize.Unrecognized {
		logger.Debug().Msg("list response has no records")
	}

	now := r.backend.now()
	records := make([]T, 0, len(envelope.Records))
	for i, raw := range envelope.Records {
		rec, ok := normalize.Parse(raw)
		if !ok {
			logger.Warn().Int("index", i).Msg("dropping list entry that is not an object")
			continue
		}

		record, ok := r.normalize(rec, now)
		if !ok {
			logger.Warn().Int("index", i).Msg("dropping record without an id")
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

func (r *Resource[T, E]) decodeOne(ctx context.Context, body []byte) (T, error) {
	var zero T

	rec, ok := single(body, r.field, "data")
	if !ok {
		return zero, apierrors.Shape(fmt.Errorf("%s: response is not a record", r.Name()))
	}

	record, ok := r.normalize(rec, r.backend.now())
	if !ok {
		zerolog.Ctx(ctx).Warn().Str("resource", r.Name()).Msg("response record has no id")
		return zero, apierrors.Shape(fmt.Errorf("%s: response record has no id", r.Name()))
	}

	return record, nil
}

// fromPayload normalizes a submitted payload as if the backend had echoed it.
func (r *Resource[T, E]) fromPayload(payload models.Payload) (T, error) {
	var zero T

	b, err := json.Marshal(payload)
	if err != nil {
		return zero, apierrors.Local(err.Error())
	}

	rec, ok := normalize.Parse(b)
	if !ok {
		return zero, apierrors.Local("%s: payload is not a record", r.Name())
	}

	record, ok := r.normalize(rec, r.backend.now())
	if !ok {
		return zero, apierrors.Local("%s: payload has no id", r.Name())
	}
	return record, nil
}

// newest returns the record with the highest id. It stands in for the
// created record when the backend does not return it.
func (r *Resource[T, E]) newest(ctx context.Context) (T, error) {
	var zero T

	records, err := r.List(ctx)
	if err != nil {
		return zero, err
	}

	if len(records) == 0 {
		return zero, apierrors.Shape(fmt.Errorf("%s: created record not found", r.Name()))
	}

	newest := records[0]
	for _, record := range records[1:] {
		if r.id(record) > r.id(newest) {
			newest = record
		}
	}
	return newest, nil
}
