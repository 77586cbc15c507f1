package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

var (
	_ contentRepo = &contentRepoMock{}
	_ userRepo    = &userRepoMock{}
	_ txManager   = &txManagerMock{}
)

type contentRepoMock struct {
	DeleteByCourseFunc func(ctx context.Context, courseID uuid.UUID) error

	calls struct {
		DeleteByCourse []struct {
			Ctx      context.Context
			CourseID uuid.UUID
		}
	}
	lockDeleteByCourse sync.RWMutex
}

func (mock *contentRepoMock) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	if mock.DeleteByCourseFunc == nil {
		panic("contentRepoMock.DeleteByCourseFunc: method is nil but contentRepo.DeleteByCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
	}{Ctx: ctx, CourseID: courseID}
	mock.lockDeleteByCourse.Lock()
	mock.calls.DeleteByCourse = append(mock.calls.DeleteByCourse, callInfo)
	mock.lockDeleteByCourse.Unlock()
	return mock.DeleteByCourseFunc(ctx, courseID)
}

func (mock *contentRepoMock) DeleteByCourseCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
} {
	mock.lockDeleteByCourse.RLock()
	calls := mock.calls.DeleteByCourse
	mock.lockDeleteByCourse.RUnlock()
	return calls
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
