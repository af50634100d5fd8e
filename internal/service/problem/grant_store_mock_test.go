package problem

import (
	"context"
	"github.com/ai4s-oj/lyrio/internal/domain"
	"sync"
)

var _ grantStore = &grantStoreMock{}

type grantStoreMock struct {
	ReplaceGrantsFunc func(ctx context.Context, objectID int64, objectType domain.ObjectType, grants []domain.PermissionGrant) error
	ListGrantsFunc    func(ctx context.Context, objectID int64, objectType domain.ObjectType) ([]domain.PermissionGrant, error)

	calls struct {
		ReplaceGrants []struct {
			Ctx        context.Context
			ObjectID   int64
			ObjectType domain.ObjectType
			Grants     []domain.PermissionGrant
		}
		ListGrants []struct {
			Ctx        context.Context
			ObjectID   int64
			ObjectType domain.ObjectType
		}
	}
	lockReplaceGrants sync.RWMutex
	lockListGrants    sync.RWMutex
}

func (mock *grantStoreMock) ReplaceGrants(ctx context.Context, objectID int64, objectType domain.ObjectType, grants []domain.PermissionGrant) error {
	if mock.ReplaceGrantsFunc == nil {
		panic("grantStoreMock.ReplaceGrantsFunc: method is nil but grantStore.ReplaceGrants was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ObjectID   int64
		ObjectType domain.ObjectType
		Grants     []domain.PermissionGrant
	}{
		Ctx:        ctx,
		ObjectID:   objectID,
		ObjectType: objectType,
		Grants:     grants,
	}
	mock.lockReplaceGrants.Lock()
	mock.calls.ReplaceGrants = append(mock.calls.ReplaceGrants, callInfo)
	mock.lockReplaceGrants.Unlock()
	return mock.ReplaceGrantsFunc(ctx, objectID, objectType, grants)
}

func (mock *grantStoreMock) ReplaceGrantsCalls() []struct {
	Ctx        context.Context
	ObjectID   int64
	ObjectType domain.ObjectType
	Grants     []domain.PermissionGrant
} {
	mock.lockReplaceGrants.RLock()
	calls := mock.calls.ReplaceGrants
	mock.lockReplaceGrants.RUnlock()
	return calls
}

func (mock *grantStoreMock) ListGrants(ctx context.Context, objectID int64, objectType domain.ObjectType) ([]domain.PermissionGrant, error) {
	if mock.ListGrantsFunc == nil {
		panic("grantStoreMock.ListGrantsFunc: method is nil but grantStore.ListGrants was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ObjectID   int64
		ObjectType domain.ObjectType
	}{
		Ctx:        ctx,
		ObjectID:   objectID,
		ObjectType: objectType,
	}
	mock.lockListGrants.Lock()
	mock.calls.ListGrants = append(mock.calls.ListGrants, callInfo)
	mock.lockListGrants.Unlock()
	return mock.ListGrantsFunc(ctx, objectID, objectType)
}

func (mock *grantStoreMock) ListGrantsCalls() []struct {
	Ctx        context.Context
	ObjectID   int64
	ObjectType domain.ObjectType
} {
	mock.lockListGrants.RLock()
	calls := mock.calls.ListGrants
	mock.lockListGrants.RUnlock()
	return calls
}
