// Package store keeps the brands landing state for one page render. The
// load action is its only writer; selectors are pure projections over a
// snapshot.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/example/brandslanding/internal/brandslanding"
)

// ErrEmptyBrandKey rejects a load without a brand key.
var ErrEmptyBrandKey = errors.New("brand key is empty")

// Source loads landing data for a brand key.
type Source interface {
	LoadLanding(ctx context.Context, brandKey string) (*brandslanding.Data, error)
}

// State is an immutable snapshot of the store.
type State struct {
	BrandKey string                   `json:"brand_key"`
	Status   brandslanding.LoadStatus `json:"status"`
	Data     *brandslanding.Data      `json:"data"`
	Error    string                   `json:"error,omitempty"`
	// GlobalEnabled is the process-wide landing switch.
	GlobalEnabled bool `json:"global_enabled"`
}

// Store holds the landing state of one render.
type Store struct {
	source        Source
	globalEnabled bool
	logger        *zap.Logger

	mu    sync.RWMutex
	state State
}

// New builds an idle store.
func New(source Source, globalEnabled bool) *Store {
	return &Store{
		source:        source,
		globalEnabled: globalEnabled,
		logger:        zap.L().Named("store"),
		state: State{
			Status:        brandslanding.StatusIdle,
			GlobalEnabled: globalEnabled,
		},
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// FetchBrandLandingData loads data for brandKey and replaces the state
// wholesale. It returns the load error, which is also recorded in the
// state as a rejected status.
func (s *Store) FetchBrandLandingData(ctx context.Context, brandKey string) error {
	brandKey = strings.TrimSpace(brandKey)

	s.replace(State{BrandKey: brandKey, Status: brandslanding.StatusPending, GlobalEnabled: s.globalEnabled})

	if brandKey == "" {
		s.reject(brandKey, ErrEmptyBrandKey)
		return ErrEmptyBrandKey
	}

	data, err := s.source.LoadLanding(ctx, brandKey)
	if err != nil {
		err = fmt.Errorf("load landing %q: %w", brandKey, err)
		s.reject(brandKey, err)
		return err
	}

	s.replace(State{
		BrandKey:      brandKey,
		Status:        brandslanding.StatusFulfilled,
		Data:          data,
		GlobalEnabled: s.globalEnabled,
	})
	return nil
}

func (s *Store) reject(brandKey string, err error) {
	s.logger.Debug("landing load rejected", zap.String("brand", brandKey), zap.Error(err))
	s.replace(State{
		BrandKey:      brandKey,
		Status:        brandslanding.StatusRejected,
		Error:         err.Error(),
		GlobalEnabled: s.globalEnabled,
	})
}

func (s *Store) replace(next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}
