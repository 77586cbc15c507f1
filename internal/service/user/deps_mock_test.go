package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var (
	_ enrollmentRepo = &enrollmentRepoMock{}
	_ passwordHasher = &passwordHasherMock{}
	_ txManager      = &txManagerMock{}
)

type enrollmentRepoMock struct {
	DeleteByUserFunc func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		DeleteByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockDeleteByUser sync.RWMutex
}

func (mock *enrollmentRepoMock) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.DeleteByUserFunc == nil {
		panic("enrollmentRepoMock.DeleteByUserFunc: method is nil but enrollmentRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *enrollmentRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}

type passwordHasherMock struct {
	HashFunc func(password string) (string, error)

	calls struct {
		Hash []struct {
			Password string
		}
	}
	lockHash sync.RWMutex
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct {
		Password string
	}{Password: password}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) HashCalls() []struct {
	Password string
} {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
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
