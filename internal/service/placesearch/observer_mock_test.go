package placesearch

import (
	"sync"
	"time"
)

var _ observer = &observerMock{}

type observerMock struct {
	ObserveAddressUnparsedFunc func()
	ObservePlacesSearchFunc    func(found int, err error)
	ObserveSummaryFunc         func(err error, d time.Duration)

	calls struct {
		ObserveAddressUnparsed []struct{}
		ObservePlacesSearch    []struct {
			Found int
			Err   error
		}
		ObserveSummary []struct {
			Err error
			D   time.Duration
		}
	}
	lockObserveAddressUnparsed sync.RWMutex
	lockObservePlacesSearch    sync.RWMutex
	lockObserveSummary         sync.RWMutex
}

func (mock *observerMock) ObserveAddressUnparsed() {
	if mock.ObserveAddressUnparsedFunc == nil {
		panic("observerMock.ObserveAddressUnparsedFunc: method is nil but observer.ObserveAddressUnparsed was just called")
	}
	mock.lockObserveAddressUnparsed.Lock()
	mock.calls.ObserveAddressUnparsed = append(mock.calls.ObserveAddressUnparsed, struct{}{})
	mock.lockObserveAddressUnparsed.Unlock()
	mock.ObserveAddressUnparsedFunc()
}

func (mock *observerMock) ObserveAddressUnparsedCalls() []struct{} {
	mock.lockObserveAddressUnparsed.RLock()
	calls := mock.calls.ObserveAddressUnparsed
	mock.lockObserveAddressUnparsed.RUnlock()
	return calls
}

func (mock *observerMock) ObservePlacesSearch(found int, err error) {
	if mock.ObservePlacesSearchFunc == nil {
		panic("observerMock.ObservePlacesSearchFunc: method is nil but observer.ObservePlacesSearch was just called")
	}
	callInfo := struct {
		Found int
		Err   error
	}{Found: found, Err: err}
	mock.lockObservePlacesSearch.Lock()
	mock.calls.ObservePlacesSearch = append(mock.calls.ObservePlacesSearch, callInfo)
	mock.lockObservePlacesSearch.Unlock()
	mock.ObservePlacesSearchFunc(found, err)
}

func (mock *observerMock) ObservePlacesSearchCalls() []struct {
	Found int
	Err   error
} {
	mock.lockObservePlacesSearch.RLock()
	calls := mock.calls.ObservePlacesSearch
	mock.lockObservePlacesSearch.RUnlock()
	return calls
}

func (mock *observerMock) ObserveSummary(err error, d time.Duration) {
	if mock.ObserveSummaryFunc == nil {
		panic("observerMock.ObserveSummaryFunc: method is nil but observer.ObserveSummary was just called")
	}
	callInfo := struct {
		Err error
		D   time.Duration
	}{Err: err, D: d}
	mock.lockObserveSummary.Lock()
	mock.calls.ObserveSummary = append(mock.calls.ObserveSummary, callInfo)
	mock.lockObserveSummary.Unlock()
	mock.ObserveSummaryFunc(err, d)
}

func (mock *observerMock) ObserveSummaryCalls() []struct {
	Err error
	D   time.Duration
} {
	mock.lockObserveSummary.RLock()
	calls := mock.calls.ObserveSummary
	mock.lockObserveSummary.RUnlock()
	return calls
}
