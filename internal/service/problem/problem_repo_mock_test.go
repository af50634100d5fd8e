package problem

import (
	"context"
	"encoding/json"
	"github.com/ai4s-oj/lyrio/internal/domain"
	"sync"
	"time"
)

var _ problemRepo = &problemRepoMock{}

type problemRepoMock struct {
	CreateFunc              func(ctx context.Context, p *domain.Problem) (*domain.Problem, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Problem, error)
	GetByDisplayIDFunc      func(ctx context.Context, displayID int) (*domain.Problem, error)
	ListFunc                func(ctx context.Context, filter domain.ProblemFilter) ([]*domain.Problem, error)
	CountFunc               func(ctx context.Context, filter domain.ProblemFilter) (int64, error)
	UpdateLocalesFunc       func(ctx context.Context, id int64, locales []string) error
	SetDisplayIDFunc        func(ctx context.Context, id int64, displayID *int) error
	SetPublicFunc           func(ctx context.Context, id int64, isPublic bool, publicTime *time.Time) error
	IncrementStatisticsFunc func(ctx context.Context, id int64, deltaSubmissions int64, deltaAccepted int64) error
	DeleteFunc              func(ctx context.Context, id int64) error
	UpsertJudgeInfoFunc     func(ctx context.Context, problemID int64, info json.RawMessage) error
	GetJudgeInfoFunc        func(ctx context.Context, problemID int64) (json.RawMessage, error)
	UpsertSampleFunc        func(ctx context.Context, problemID int64, data []domain.SampleData) error
	GetSampleFunc           func(ctx context.Context, problemID int64) ([]domain.SampleData, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Problem
		}
		GetByID []struct {
			Ctx context.Context
			Id  int64
		}
		GetByDisplayID []struct {
			Ctx       context.Context
			DisplayID int
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ProblemFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.ProblemFilter
		}
		UpdateLocales []struct {
			Ctx     context.Context
			Id      int64
			Locales []string
		}
		SetDisplayID []struct {
			Ctx       context.Context
			Id        int64
			DisplayID *int
		}
		SetPublic []struct {
			Ctx        context.Context
			Id         int64
			IsPublic   bool
			PublicTime *time.Time
		}
		IncrementStatistics []struct {
			Ctx              context.Context
			Id               int64
			DeltaSubmissions int64
			DeltaAccepted    int64
		}
		Delete []struct {
			Ctx context.Context
			Id  int64
		}
		UpsertJudgeInfo []struct {
			Ctx       context.Context
			ProblemID int64
			Info      json.RawMessage
		}
		GetJudgeInfo []struct {
			Ctx       context.Context
			ProblemID int64
		}
		UpsertSample []struct {
			Ctx       context.Context
			ProblemID int64
			Data      []domain.SampleData
		}
		GetSample []struct {
			Ctx       context.Context
			ProblemID int64
		}
	}
	lockCreate              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockGetByDisplayID      sync.RWMutex
	lockList                sync.RWMutex
	lockCount               sync.RWMutex
	lockUpdateLocales       sync.RWMutex
	lockSetDisplayID        sync.RWMutex
	lockSetPublic           sync.RWMutex
	lockIncrementStatistics sync.RWMutex
	lockDelete              sync.RWMutex
	lockUpsertJudgeInfo     sync.RWMutex
	lockGetJudgeInfo        sync.RWMutex
	lockUpsertSample        sync.RWMutex
	lockGetSample           sync.RWMutex
}

func (mock *problemRepoMock) Create(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	if mock.CreateFunc == nil {
		panic("problemRepoMock.CreateFunc: method is nil but problemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Problem
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *problemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Problem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *problemRepoMock) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	if mock.GetByIDFunc == nil {
		panic("problemRepoMock.GetByIDFunc: method is nil but problemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *problemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *problemRepoMock) GetByDisplayID(ctx context.Context, displayID int) (*domain.Problem, error) {
	if mock.GetByDisplayIDFunc == nil {
		panic("problemRepoMock.GetByDisplayIDFunc: method is nil but problemRepo.GetByDisplayID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		DisplayID int
	}{Ctx: ctx, DisplayID: displayID}
	mock.lockGetByDisplayID.Lock()
	mock.calls.GetByDisplayID = append(mock.calls.GetByDisplayID, callInfo)
	mock.lockGetByDisplayID.Unlock()
	return mock.GetByDisplayIDFunc(ctx, displayID)
}

func (mock *problemRepoMock) GetByDisplayIDCalls() []struct {
	Ctx       context.Context
	DisplayID int
} {
	mock.lockGetByDisplayID.RLock()
	calls := mock.calls.GetByDisplayID
	mock.lockGetByDisplayID.RUnlock()
	return calls
}

func (mock *problemRepoMock) List(ctx context.Context, filter domain.ProblemFilter) ([]*domain.Problem, error) {
	if mock.ListFunc == nil {
		panic("problemRepoMock.ListFunc: method is nil but problemRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProblemFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *problemRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ProblemFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *problemRepoMock) Count(ctx context.Context, filter domain.ProblemFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("problemRepoMock.CountFunc: method is nil but problemRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ProblemFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *problemRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.ProblemFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *problemRepoMock) UpdateLocales(ctx context.Context, id int64, locales []string) error {
	if mock.UpdateLocalesFunc == nil {
		panic("problemRepoMock.UpdateLocalesFunc: method is nil but problemRepo.UpdateLocales was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Id      int64
		Locales []string
	}{
		Ctx:     ctx,
		Id:      id,
		Locales: locales,
	}
	mock.lockUpdateLocales.Lock()
	mock.calls.UpdateLocales = append(mock.calls.UpdateLocales, callInfo)
	mock.lockUpdateLocales.Unlock()
	return mock.UpdateLocalesFunc(ctx, id, locales)
}

func (mock *problemRepoMock) UpdateLocalesCalls() []struct {
	Ctx     context.Context
	Id      int64
	Locales []string
} {
	mock.lockUpdateLocales.RLock()
	calls := mock.calls.UpdateLocales
	mock.lockUpdateLocales.RUnlock()
	return calls
}

func (mock *problemRepoMock) SetDisplayID(ctx context.Context, id int64, displayID *int) error {
	if mock.SetDisplayIDFunc == nil {
		panic("problemRepoMock.SetDisplayIDFunc: method is nil but problemRepo.SetDisplayID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Id        int64
		DisplayID *int
	}{
		Ctx:       ctx,
		Id:        id,
		DisplayID: displayID,
	}
	mock.lockSetDisplayID.Lock()
	mock.calls.SetDisplayID = append(mock.calls.SetDisplayID, callInfo)
	mock.lockSetDisplayID.Unlock()
	return mock.SetDisplayIDFunc(ctx, id, displayID)
}

func (mock *problemRepoMock) SetDisplayIDCalls() []struct {
	Ctx       context.Context
	Id        int64
	DisplayID *int
} {
	mock.lockSetDisplayID.RLock()
	calls := mock.calls.SetDisplayID
	mock.lockSetDisplayID.RUnlock()
	return calls
}

func (mock *problemRepoMock) SetPublic(ctx context.Context, id int64, isPublic bool, publicTime *time.Time) error {
	if mock.SetPublicFunc == nil {
		panic("problemRepoMock.SetPublicFunc: method is nil but problemRepo.SetPublic was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Id         int64
		IsPublic   bool
		PublicTime *time.Time
	}{
		Ctx:        ctx,
		Id:         id,
		IsPublic:   isPublic,
		PublicTime: publicTime,
	}
	mock.lockSetPublic.Lock()
	mock.calls.SetPublic = append(mock.calls.SetPublic, callInfo)
	mock.lockSetPublic.Unlock()
	return mock.SetPublicFunc(ctx, id, isPublic, publicTime)
}

func (mock *problemRepoMock) SetPublicCalls() []struct {
	Ctx        context.Context
	Id         int64
	IsPublic   bool
	PublicTime *time.Time
} {
	mock.lockSetPublic.RLock()
	calls := mock.calls.SetPublic
	mock.lockSetPublic.RUnlock()
	return calls
}

func (mock *problemRepoMock) IncrementStatistics(ctx context.Context, id int64, deltaSubmissions int64, deltaAccepted int64) error {
	if mock.IncrementStatisticsFunc == nil {
		panic("problemRepoMock.IncrementStatisticsFunc: method is nil but problemRepo.IncrementStatistics was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		Id               int64
		DeltaSubmissions int64
		DeltaAccepted    int64
	}{
		Ctx:              ctx,
		Id:               id,
		DeltaSubmissions: deltaSubmissions,
		DeltaAccepted:    deltaAccepted,
	}
	mock.lockIncrementStatistics.Lock()
	mock.calls.IncrementStatistics = append(mock.calls.IncrementStatistics, callInfo)
	mock.lockIncrementStatistics.Unlock()
	return mock.IncrementStatisticsFunc(ctx, id, deltaSubmissions, deltaAccepted)
}

func (mock *problemRepoMock) IncrementStatisticsCalls() []struct {
	Ctx              context.Context
	Id               int64
	DeltaSubmissions int64
	DeltaAccepted    int64
} {
	mock.lockIncrementStatistics.RLock()
	calls := mock.calls.IncrementStatistics
	mock.lockIncrementStatistics.RUnlock()
	return calls
}

func (mock *problemRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("problemRepoMock.DeleteFunc: method is nil but problemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  int64
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *problemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *problemRepoMock) UpsertJudgeInfo(ctx context.Context, problemID int64, info json.RawMessage) error {
	if mock.UpsertJudgeInfoFunc == nil {
		panic("problemRepoMock.UpsertJudgeInfoFunc: method is nil but problemRepo.UpsertJudgeInfo was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProblemID int64
		Info      json.RawMessage
	}{
		Ctx:       ctx,
		ProblemID: problemID,
		Info:      info,
	}
	mock.lockUpsertJudgeInfo.Lock()
	mock.calls.UpsertJudgeInfo = append(mock.calls.UpsertJudgeInfo, callInfo)
	mock.lockUpsertJudgeInfo.Unlock()
	return mock.UpsertJudgeInfoFunc(ctx, problemID, info)
}

func (mock *problemRepoMock) UpsertJudgeInfoCalls() []struct {
	Ctx       context.Context
	ProblemID int64
	Info      json.RawMessage
} {
	mock.lockUpsertJudgeInfo.RLock()
	calls := mock.calls.UpsertJudgeInfo
	mock.lockUpsertJudgeInfo.RUnlock()
	return calls
}

func (mock *problemRepoMock) GetJudgeInfo(ctx context.Context, problemID int64) (json.RawMessage, error) {
	if mock.GetJudgeInfoFunc == nil {
		panic("problemRepoMock.GetJudgeInfoFunc: method is nil but problemRepo.GetJudgeInfo was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProblemID int64
	}{Ctx: ctx, ProblemID: problemID}
	mock.lockGetJudgeInfo.Lock()
	mock.calls.GetJudgeInfo = append(mock.calls.GetJudgeInfo, callInfo)
	mock.lockGetJudgeInfo.Unlock()
	return mock.GetJudgeInfoFunc(ctx, problemID)
}

func (mock *problemRepoMock) GetJudgeInfoCalls() []struct {
	Ctx       context.Context
	ProblemID int64
} {
	mock.lockGetJudgeInfo.RLock()
	calls := mock.calls.GetJudgeInfo
	mock.lockGetJudgeInfo.RUnlock()
	return calls
}

func (mock *problemRepoMock) UpsertSample(ctx context.Context, problemID int64, data []domain.SampleData) error {
	if mock.UpsertSampleFunc == nil {
		panic("problemRepoMock.UpsertSampleFunc: method is nil but problemRepo.UpsertSample was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProblemID int64
		Data      []domain.SampleData
	}{
		Ctx:       ctx,
		ProblemID: problemID,
		Data:      data,
	}
	mock.lockUpsertSample.Lock()
	mock.calls.UpsertSample = append(mock.calls.UpsertSample, callInfo)
	mock.lockUpsertSample.Unlock()
	return mock.UpsertSampleFunc(ctx, problemID, data)
}

func (mock *problemRepoMock) UpsertSampleCalls() []struct {
	Ctx       context.Context
	ProblemID int64
	Data      []domain.SampleData
} {
	mock.lockUpsertSample.RLock()
	calls := mock.calls.UpsertSample
	mock.lockUpsertSample.RUnlock()
	return calls
}

func (mock *problemRepoMock) GetSample(ctx context.Context, problemID int64) ([]domain.SampleData, error) {
	if mock.GetSampleFunc == nil {
		panic("problemRepoMock.GetSampleFunc: method is nil but problemRepo.GetSample was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProblemID int64
	}{Ctx: ctx, ProblemID: problemID}
	mock.lockGetSample.Lock()
	mock.calls.GetSample = append(mock.calls.GetSample, callInfo)
	mock.lockGetSample.Unlock()
	return mock.GetSampleFunc(ctx, problemID)
}

func (mock *problemRepoMock) GetSampleCalls() []struct {
	Ctx       context.Context
	ProblemID int64
} {
	mock.lockGetSample.RLock()
	calls := mock.calls.GetSample
	mock.lockGetSample.RUnlock()
	return calls
}
