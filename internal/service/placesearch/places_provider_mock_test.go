package placesearch

import (
	"context"
	"sync"

	"github.com/kceleski/ava-care-compass/internal/provider"
)

var _ placesProvider = &placesProviderMock{}

type placesProviderMock struct {
	SearchPlacesFunc func(ctx context.Context, query string, placeType string, num int) (provider.PlacesResult, error)

	calls struct {
		SearchPlaces []struct {
			Ctx       context.Context
			Query     string
			PlaceType string
			Num       int
		}
	}
	lockSearchPlaces sync.RWMutex
}

func (mock *placesProviderMock) SearchPlaces(ctx context.Context, query string, placeType string, num int) (provider.PlacesResult, error) {
	if mock.SearchPlacesFunc == nil {
		panic("placesProviderMock.SearchPlacesFunc: method is nil but placesProvider.SearchPlaces was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Query     string
		PlaceType string
		Num       int
	}{Ctx: ctx, Query: query, PlaceType: placeType, Num: num}
	mock.lockSearchPlaces.Lock()
	mock.calls.SearchPlaces = append(mock.calls.SearchPlaces, callInfo)
	mock.lockSearchPlaces.Unlock()
	return mock.SearchPlacesFunc(ctx, query, placeType, num)
}

func (mock *placesProviderMock) SearchPlacesCalls() []struct {
	Ctx       context.Context
	Query     string
	PlaceType string
	Num       int
} {
	mock.lockSearchPlaces.RLock()
	calls := mock.calls.SearchPlaces
	mock.lockSearchPlaces.RUnlock()
	return calls
}
