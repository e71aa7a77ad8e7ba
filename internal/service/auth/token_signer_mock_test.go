package auth

import (
	"sync"
	"time"

	"github.com/kceleski/ava-care-compass/internal/auth"
)

var _ tokenSigner = &tokenSignerMock{}

type tokenSignerMock struct {
	SignFunc func(id auth.Identity, ttl time.Duration) (string, error)

	calls struct {
		Sign []struct {
			Id  auth.Identity
			Ttl time.Duration
		}
	}
	lockSign sync.RWMutex
}

func (mock *tokenSignerMock) Sign(id auth.Identity, ttl time.Duration) (string, error) {
	if mock.SignFunc == nil {
		panic("tokenSignerMock.SignFunc: method is nil but tokenSigner.Sign was just called")
	}
	callInfo := struct {
		Id  auth.Identity
		Ttl time.Duration
	}{Id: id, Ttl: ttl}
	mock.lockSign.Lock()
	mock.calls.Sign = append(mock.calls.Sign, callInfo)
	mock.lockSign.Unlock()
	return mock.SignFunc(id, ttl)
}

func (mock *tokenSignerMock) SignCalls() []struct {
	Id  auth.Identity
	Ttl time.Duration
} {
	mock.lockSign.RLock()
	calls := mock.calls.Sign
	mock.lockSign.RUnlock()
	return calls
}
