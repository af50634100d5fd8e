package permission

import (
	"context"
	"github.com/ai4s-oj/lyrio/internal/domain"
	"sync"
)

var _ privilegeChecker = &privilegeCheckerMock{}

type privilegeCheckerMock struct {
	HasPrivilegeFunc func(ctx context.Context, userID int64, privilege domain.Privilege) (bool, error)

	calls struct {
		HasPrivilege []struct {
			Ctx       context.Context
			UserID    int64
			Privilege domain.Privilege
		}
	}
	lockHasPrivilege sync.RWMutex
}

func (mock *privilegeCheckerMock) HasPrivilege(ctx context.Context, userID int64, privilege domain.Privilege) (bool, error) {
	if mock.HasPrivilegeFunc == nil {
		panic("privilegeCheckerMock.HasPrivilegeFunc: method is nil but privilegeChecker.HasPrivilege was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    int64
		Privilege domain.Privilege
	}{
		Ctx:       ctx,
		UserID:    userID,
		Privilege: privilege,
	}
	mock.lockHasPrivilege.Lock()
	mock.calls.HasPrivilege = append(mock.calls.HasPrivilege, callInfo)
	mock.lockHasPrivilege.Unlock()
	return mock.HasPrivilegeFunc(ctx, userID, privilege)
}

func (mock *privilegeCheckerMock) HasPrivilegeCalls() []struct {
	Ctx       context.Context
	UserID    int64
	Privilege domain.Privilege
} {
	mock.lockHasPrivilege.RLock()
	calls := mock.calls.HasPrivilege
	mock.lockHasPrivilege.RUnlock()
	return calls
}
