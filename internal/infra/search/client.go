package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"catalog/internal/errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const suggestionAggName = "suggestions"

// Narrow response shapes. Only the fields the adapters consume are
// decoded; everything else in the Elasticsearch response is dropped.

type searchResult[T any] struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source T `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
	Aggregations map[string]aggResult `json:"aggregations"`
}

type aggResult struct {
	Buckets []aggBucket `json:"buckets"`
}

type aggBucket struct {
	Key      string `json:"key"`
	DocCount int64  `json:"doc_count"`
}

type bulkResult struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string `json:"_id"`
		Status int    `json:"status"`
		Error  *struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

func encodeBody(body any) (*bytes.Reader, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request body")
	}

	return bytes.NewReader(raw), nil
}

// responseError turns a non-2xx Elasticsearch response into an error
// carrying the status line and body for reconciliation logs.
func responseError(op string, res *esapi.Response) error {
	raw, _ := io.ReadAll(res.Body)

	return errors.Errorf("%s: [%s] %s", op, res.Status(), raw)
}

func closeAndCheck(op string, res *esapi.Response, err error) error {
	// esapi can hand back both a response and an error, so the body
	// must be closed regardless of which one wins.
	if res != nil && res.Body != nil {
		defer res.Body.Close()
	}
	if err != nil {
		return errors.Wrap(err, op)
	}

	if res.IsError() {
		return responseError(op, res)
	}

	return nil
}

// ensureIndex creates the named index with its mapping unless it
// already exists.
func ensureIndex(ctx context.Context, es *elasticsearch.Client, name string, mapping map[string]any) error {
	res, err := es.Indices.Exists([]string{name}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "failed to check index %s", name)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}
	if res.StatusCode != 404 {
		return responseError("index exists check", res)
	}

	body, err := encodeBody(mapping)
	if err != nil {
		return err
	}

	createRes, err := es.Indices.Create(name,
		es.Indices.Create.WithBody(body),
		es.Indices.Create.WithContext(ctx),
	)

	return closeAndCheck("create index "+name, createRes, err)
}

// runSearch executes a query body against one index and decodes the
// hits into T.
func runSearch[T any](ctx context.Context, es *elasticsearch.Client, index string, body map[string]any) (*searchResult[T], error) {
	encoded, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(encoded),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "search %s", index)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError("search "+index, res)
	}

	var result searchResult[T]
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s search response", index)
	}

	return &result, nil
}

// indexDocument upserts one document; using the entity id as document
// id keeps repeated indexing idempotent.
func indexDocument(ctx context.Context, es *elasticsearch.Client, index, id string, doc any) error {
	body, err := encodeBody(doc)
	if err != nil {
		return err
	}

	res, err := es.Index(index, body,
		es.Index.WithDocumentID(id),
		es.Index.WithContext(ctx),
	)

	return closeAndCheck("index "+index+"/"+id, res, err)
}

// updateDocument applies a partial document.
func updateDocument(ctx context.Context, es *elasticsearch.Client, index, id string, partial map[string]any) error {
	body, err := encodeBody(map[string]any{"doc": partial})
	if err != nil {
		return err
	}

	res, err := es.Update(index, id, body, es.Update.WithContext(ctx))

	return closeAndCheck("update "+index+"/"+id, res, err)
}

func deleteDocument(ctx context.Context, es *elasticsearch.Client, index, id string) error {
	res, err := es.Delete(index, id, es.Delete.WithContext(ctx))

	return closeAndCheck("delete "+index+"/"+id, res, err)
}

// bulkIndex submits one NDJSON bulk request of index actions and
// reports per-item failures without failing the whole batch.
func bulkIndex(ctx context.Context, es *elasticsearch.Client, index string, ids []string, docs []any) (failed []string, err error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for i, doc := range docs {
		action := map[string]any{
			"index": map[string]any{"_index": index, "_id": ids[i]},
		}
		if err := enc.Encode(action); err != nil {
			return nil, errors.Wrap(err, "failed to encode bulk action")
		}
		if err := enc.Encode(doc); err != nil {
			return nil, errors.Wrap(err, "failed to encode bulk document")
		}
	}

	res, err := es.Bulk(bytes.NewReader(buf.Bytes()), es.Bulk.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "bulk %s", index)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, responseError("bulk "+index, res)
	}

	var result bulkResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode bulk response")
	}

	if !result.Errors {
		return nil, nil
	}

	for _, item := range result.Items {
		for _, op := range item {
			if op.Error != nil || op.Status >= 300 {
				failed = append(failed, op.ID)
			}
		}
	}

	return failed, nil
}
