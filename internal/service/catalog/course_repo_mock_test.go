package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	coursepg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	CreateFunc  func(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	FindFunc    func(ctx context.Context, f coursepg.Filter, page domain.PageRequest) ([]domain.Course, int, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Course
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Find []struct {
			Ctx  context.Context
			F    coursepg.Filter
			Page domain.PageRequest
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.CourseUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockFind    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *courseRepoMock) Create(ctx context.Context, c *domain.Course) (*domain.Course, error) {
	if mock.CreateFunc == nil {
		panic("courseRepoMock.CreateFunc: method is nil but courseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Course
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *courseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Course
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *courseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	if mock.GetByIDFunc == nil {
		panic("courseRepoMock.GetByIDFunc: method is nil but courseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *courseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *courseRepoMock) Find(ctx context.Context, f coursepg.Filter, page domain.PageRequest) ([]domain.Course, int, error) {
	if mock.FindFunc == nil {
		panic("courseRepoMock.FindFunc: method is nil but courseRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    coursepg.Filter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *courseRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    coursepg.Filter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *courseRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.CourseUpdateParams) (*domain.Course, error) {
	if mock.UpdateFunc == nil {
		panic("courseRepoMock.UpdateFunc: method is nil but courseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.CourseUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *courseRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.CourseUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *courseRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("courseRepoMock.DeleteFunc: method is nil but courseRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *courseRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
