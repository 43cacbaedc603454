package tablestore

import (
	"context"
	"maps"
	"reflect"
	"sync"

	"locadora-api/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoryStore is the in-process twin of DynamoStore used by unit tests. It
// round-trips items through attributevalue so marshaling behavior matches
// the real store, and it rejects empty keys the way the service does.
type MemoryStore struct {
	mu         sync.RWMutex
	partitions map[string]map[string]map[string]types.AttributeValue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		partitions: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func (s *MemoryStore) Create(_ context.Context, partition, row string, item any) error {
	if err := checkKey(partition, row); err != nil {
		return err
	}
	av, err := marshalMemoryItem(item)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.partitions[partition]
	if !ok {
		rows = make(map[string]map[string]types.AttributeValue)
		s.partitions[partition] = rows
	}
	if _, taken := rows[row]; taken {
		return ErrItemExists
	}
	rows[row] = av
	return nil
}

func (s *MemoryStore) Get(_ context.Context, partition, row string, out any) error {
	if err := checkKey(partition, row); err != nil {
		return err
	}

	// Merge rewrites stored maps in place, so snapshot under the lock and
	// unmarshal outside it.
	s.mu.RLock()
	av, ok := s.partitions[partition][row]
	if ok {
		av = maps.Clone(av)
	}
	s.mu.RUnlock()

	if !ok {
		return ErrItemNotFound
	}
	if err := attributevalue.UnmarshalMap(av, out); err != nil {
		return errs.Wrap(err, "unmarshal item")
	}
	return nil
}

func (s *MemoryStore) Merge(_ context.Context, partition, row string, attrs map[string]any) error {
	if err := checkKey(partition, row); err != nil {
		return err
	}
	patch, err := marshalMemoryItem(attrs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	av, ok := s.partitions[partition][row]
	if !ok {
		return ErrItemNotFound
	}
	for name, value := range patch {
		av[name] = value
	}
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, partition, row string, item any) error {
	if err := checkKey(partition, row); err != nil {
		return err
	}
	av, err := marshalMemoryItem(item)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, ok := s.partitions[partition]
	if !ok {
		rows = make(map[string]map[string]types.AttributeValue)
		s.partitions[partition] = rows
	}
	rows[row] = av
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, partition, row string) error {
	if err := checkKey(partition, row); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partitions[partition][row]; !ok {
		return ErrItemNotFound
	}
	delete(s.partitions[partition], row)
	return nil
}

func (s *MemoryStore) Query(_ context.Context, partition string, filter Filter, out any) error {
	if partition == "" {
		return ErrEmptyKey
	}

	var want map[string]types.AttributeValue
	if len(filter) > 0 {
		marshaled, err := marshalMemoryItem(map[string]any(filter))
		if err != nil {
			return err
		}
		want = marshaled
	}

	s.mu.RLock()
	var items []map[string]types.AttributeValue
	for _, av := range s.partitions[partition] {
		if matchesFilter(av, want) {
			items = append(items, maps.Clone(av))
		}
	}
	s.mu.RUnlock()

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return errs.Wrap(err, "unmarshal items")
	}
	return nil
}

func checkKey(partition, row string) error {
	if partition == "" || row == "" {
		return ErrEmptyKey
	}
	return nil
}

func matchesFilter(av, want map[string]types.AttributeValue) bool {
	for name, value := range want {
		got, ok := av[name]
		if !ok || !reflect.DeepEqual(got, value) {
			return false
		}
	}
	return true
}

func marshalMemoryItem(item any) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errs.Wrap(err, "marshal item")
	}
	return av, nil
}
