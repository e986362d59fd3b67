// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/absmach/smppc/composer"
	repoerr "github.com/absmach/smppc/pkg/errors/repository"
)

var _ composer.EventRepository = (*eventRepoMock)(nil)

type eventRepoMock struct {
	mu     sync.Mutex
	events map[string]composer.Event
}

// NewEventRepository returns an in-memory event repository.
func NewEventRepository() composer.EventRepository {
	return &eventRepoMock{
		events: make(map[string]composer.Event),
	}
}

func (erm *eventRepoMock) Save(_ context.Context, e composer.Event) error {
	erm.mu.Lock()
	defer erm.mu.Unlock()

	if _, ok := erm.events[e.ID]; ok {
		return repoerr.ErrConflict
	}
	erm.events[e.ID] = e
	return nil
}

func (erm *eventRepoMock) RetrieveAll(_ context.Context, pm composer.PageMetadata) (composer.EventsPage, error) {
	erm.mu.Lock()
	defer erm.mu.Unlock()

	var matches []composer.Event
	for _, e := range erm.events {
		if pm.Kind != nil && e.Kind != *pm.Kind {
			continue
		}
		if !pm.From.IsZero() && e.OccurredAt.Before(pm.From) {
			continue
		}
		if !pm.To.IsZero() && e.OccurredAt.After(pm.To) {
			continue
		}
		matches = append(matches, e)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if pm.Direction == "desc" {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].ID < matches[j].ID
	})

	page := composer.EventsPage{
		Total:  uint64(len(matches)),
		Offset: pm.Offset,
		Limit:  pm.Limit,
	}
	if pm.Offset >= uint64(len(matches)) {
		return page, nil
	}
	end := uint64(len(matches))
	if pm.Limit > 0 && pm.Offset+pm.Limit < end {
		end = pm.Offset + pm.Limit
	}
	page.Events = matches[pm.Offset:end]

	return page, nil
}
