package content

import (
	"context"
	"sync"

	"github.com/google/uuid"

	contentpg "github.com/heartmarshall/coursehub-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

var (
	_ contentRepo = &contentRepoMock{}
	_ courseRepo  = &courseRepoMock{}
)

type contentRepoMock struct {
	CreateFunc  func(ctx context.Context, c *domain.Content) (*domain.Content, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	FindFunc    func(ctx context.Context, f contentpg.Filter, page domain.PageRequest) ([]domain.Content, int, error)
	CountFunc   func(ctx context.Context, f contentpg.Filter) (int, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.ContentUpdateParams) (*domain.Content, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Content
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Find []struct {
			Ctx  context.Context
			F    contentpg.Filter
			Page domain.PageRequest
		}
		Count []struct {
			Ctx context.Context
			F   contentpg.Filter
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ContentUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockFind    sync.RWMutex
	lockCount   sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *contentRepoMock) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	if mock.CreateFunc == nil {
		panic("contentRepoMock.CreateFunc: method is nil but contentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Content
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Content
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if mock.GetByIDFunc == nil {
		panic("contentRepoMock.GetByIDFunc: method is nil but contentRepo.GetByID was just called")
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

func (mock *contentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contentRepoMock) Find(ctx context.Context, f contentpg.Filter, page domain.PageRequest) ([]domain.Content, int, error) {
	if mock.FindFunc == nil {
		panic("contentRepoMock.FindFunc: method is nil but contentRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    contentpg.Filter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *contentRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    contentpg.Filter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *contentRepoMock) Count(ctx context.Context, f contentpg.Filter) (int, error) {
	if mock.CountFunc == nil {
		panic("contentRepoMock.CountFunc: method is nil but contentRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   contentpg.Filter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *contentRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   contentpg.Filter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *contentRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ContentUpdateParams) (*domain.Content, error) {
	if mock.UpdateFunc == nil {
		panic("contentRepoMock.UpdateFunc: method is nil but contentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ContentUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *contentRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ContentUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("contentRepoMock.DeleteFunc: method is nil but contentRepo.Delete was just called")
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

func (mock *contentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

type courseRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Course, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
