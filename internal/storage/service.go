package storage

import (
	"context"
	"encoding/json"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

// Service stores JSON documents on top of an Adapter.
type Service struct {
	adapter Adapter
}

// NewService creates a new Service.
func NewService(adapter Adapter) *Service {
	return &Service{adapter: adapter}
}

// Adapter returns the underlying adapter.
func (s *Service) Adapter() Adapter {
	return s.adapter
}

// SaveJSON serializes v and stores it under key.
func (s *Service) SaveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode "+key)
	}
	return s.adapter.Set(ctx, key, data)
}

// LoadJSON decodes the document stored under key into dst. It returns false with a nil
// error when the key is absent. A stored value that is not valid JSON for dst yields an
// error wrapping ErrUnsupportedFormat.
func (s *Service) LoadJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.adapter.Get(ctx, key)
	if err != nil {
		if apperrors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, apperrors.Wrap(apperrors.ErrUnsupportedFormat, "failed to decode "+key+": "+err.Error())
	}
	return true, nil
}

// Remove deletes key.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.adapter.Remove(ctx, key)
}

// Exists reports whether key holds a value.
func (s *Service) Exists(ctx context.Context, key string) (bool, error) {
	return s.adapter.Exists(ctx, key)
}

// Size returns the total number of stored bytes across KnownKeys.
func (s *Service) Size(ctx context.Context) (int, error) {
	size := 0
	for _, key := range KnownKeys() {
		data, err := s.adapter.Get(ctx, key)
		if err != nil {
			if apperrors.Is(err, ErrKeyNotFound) {
				continue
			}
			return 0, err
		}
		size += len(data)
	}
	return size, nil
}

// Entry describes one stored key.
type Entry struct {
	Key    string `json:"key"`
	Exists bool   `json:"exists"`
	Size   int    `json:"size"`
}

// Entries describes every key in KnownKeys, in order.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	entries := make([]Entry, 0, len(KnownKeys()))
	for _, key := range KnownKeys() {
		entry := Entry{Key: key}
		data, err := s.adapter.Get(ctx, key)
		switch {
		case err == nil:
			entry.Exists = true
			entry.Size = len(data)
		case apperrors.Is(err, ErrKeyNotFound):
		default:
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Clear removes every key in KnownKeys.
func (s *Service) Clear(ctx context.Context) error {
	for _, key := range KnownKeys() {
		if err := s.adapter.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
