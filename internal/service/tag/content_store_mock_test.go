package tag

import (
	"context"
	"github.com/ai4s-oj/lyrio/internal/domain"
	"sync"
)

var _ contentStore = &contentStoreMock{}

type contentStoreMock struct {
	GetFunc       func(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) (string, error)
	GetAllFunc    func(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) (map[string]string, error)
	UpsertFunc    func(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string, data string) error
	DeleteFunc    func(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) error
	DeleteAllFunc func(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) error

	calls struct {
		Get []struct {
			Ctx     context.Context
			OwnerID int64
			Typ     domain.LocalizedContentType
			Locale  string
		}
		GetAll []struct {
			Ctx     context.Context
			OwnerID int64
			Typ     domain.LocalizedContentType
		}
		Upsert []struct {
			Ctx     context.Context
			OwnerID int64
			Typ     domain.LocalizedContentType
			Locale  string
			Data    string
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID int64
			Typ     domain.LocalizedContentType
			Locale  string
		}
		DeleteAll []struct {
			Ctx     context.Context
			OwnerID int64
			Typ     domain.LocalizedContentType
		}
	}
	lockGet       sync.RWMutex
	lockGetAll    sync.RWMutex
	lockUpsert    sync.RWMutex
	lockDelete    sync.RWMutex
	lockDeleteAll sync.RWMutex
}

func (mock *contentStoreMock) Get(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) (string, error) {
	if mock.GetFunc == nil {
		panic("contentStoreMock.GetFunc: method is nil but contentStore.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Typ     domain.LocalizedContentType
		Locale  string
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Typ:     typ,
		Locale:  locale,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ownerID, typ, locale)
}

func (mock *contentStoreMock) GetCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Typ     domain.LocalizedContentType
	Locale  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contentStoreMock) GetAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) (map[string]string, error) {
	if mock.GetAllFunc == nil {
		panic("contentStoreMock.GetAllFunc: method is nil but contentStore.GetAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Typ     domain.LocalizedContentType
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Typ:     typ,
	}
	mock.lockGetAll.Lock()
	mock.calls.GetAll = append(mock.calls.GetAll, callInfo)
	mock.lockGetAll.Unlock()
	return mock.GetAllFunc(ctx, ownerID, typ)
}

func (mock *contentStoreMock) GetAllCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Typ     domain.LocalizedContentType
} {
	mock.lockGetAll.RLock()
	calls := mock.calls.GetAll
	mock.lockGetAll.RUnlock()
	return calls
}

func (mock *contentStoreMock) Upsert(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string, data string) error {
	if mock.UpsertFunc == nil {
		panic("contentStoreMock.UpsertFunc: method is nil but contentStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Typ     domain.LocalizedContentType
		Locale  string
		Data    string
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Typ:     typ,
		Locale:  locale,
		Data:    data,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, ownerID, typ, locale, data)
}

func (mock *contentStoreMock) UpsertCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Typ     domain.LocalizedContentType
	Locale  string
	Data    string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *contentStoreMock) Delete(ctx context.Context, ownerID int64, typ domain.LocalizedContentType, locale string) error {
	if mock.DeleteFunc == nil {
		panic("contentStoreMock.DeleteFunc: method is nil but contentStore.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Typ     domain.LocalizedContentType
		Locale  string
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Typ:     typ,
		Locale:  locale,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, typ, locale)
}

func (mock *contentStoreMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Typ     domain.LocalizedContentType
	Locale  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *contentStoreMock) DeleteAll(ctx context.Context, ownerID int64, typ domain.LocalizedContentType) error {
	if mock.DeleteAllFunc == nil {
		panic("contentStoreMock.DeleteAllFunc: method is nil but contentStore.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID int64
		Typ     domain.LocalizedContentType
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Typ:     typ,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, ownerID, typ)
}

func (mock *contentStoreMock) DeleteAllCalls() []struct {
	Ctx     context.Context
	OwnerID int64
	Typ     domain.LocalizedContentType
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
