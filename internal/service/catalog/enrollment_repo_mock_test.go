package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/coursehub-backend/internal/domain"
)

var _ enrollmentRepo = &enrollmentRepoMock{}

type enrollmentRepoMock struct {
	IsEnrolledFunc          func(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	EnrollFunc              func(ctx context.Context, userID, courseID uuid.UUID) error
	UnenrollFunc            func(ctx context.Context, userID, courseID uuid.UUID) error
	CountByCourseFunc       func(ctx context.Context, courseID uuid.UUID) (int, error)
	CountByCoursesFunc      func(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error)
	ListUsersByCourseFunc   func(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error)
	ListCourseIDsByUserFunc func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteByCourseFunc      func(ctx context.Context, courseID uuid.UUID) error

	calls struct {
		IsEnrolled []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			CourseID uuid.UUID
		}
		Enroll []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			CourseID uuid.UUID
		}
		Unenroll []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			CourseID uuid.UUID
		}
		CountByCourse []struct {
			Ctx      context.Context
			CourseID uuid.UUID
		}
		CountByCourses []struct {
			Ctx       context.Context
			CourseIDs []uuid.UUID
		}
		ListUsersByCourse []struct {
			Ctx      context.Context
			CourseID uuid.UUID
		}
		ListCourseIDsByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		DeleteByCourse []struct {
			Ctx      context.Context
			CourseID uuid.UUID
		}
	}
	lockIsEnrolled          sync.RWMutex
	lockEnroll              sync.RWMutex
	lockUnenroll            sync.RWMutex
	lockCountByCourse       sync.RWMutex
	lockCountByCourses      sync.RWMutex
	lockListUsersByCourse   sync.RWMutex
	lockListCourseIDsByUser sync.RWMutex
	lockDeleteByCourse      sync.RWMutex
}

func (mock *enrollmentRepoMock) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	if mock.IsEnrolledFunc == nil {
		panic("enrollmentRepoMock.IsEnrolledFunc: method is nil but enrollmentRepo.IsEnrolled was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		CourseID uuid.UUID
	}{Ctx: ctx, UserID: userID, CourseID: courseID}
	mock.lockIsEnrolled.Lock()
	mock.calls.IsEnrolled = append(mock.calls.IsEnrolled, callInfo)
	mock.lockIsEnrolled.Unlock()
	return mock.IsEnrolledFunc(ctx, userID, courseID)
}

func (mock *enrollmentRepoMock) IsEnrolledCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	CourseID uuid.UUID
} {
	mock.lockIsEnrolled.RLock()
	calls := mock.calls.IsEnrolled
	mock.lockIsEnrolled.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) Enroll(ctx context.Context, userID, courseID uuid.UUID) error {
	if mock.EnrollFunc == nil {
		panic("enrollmentRepoMock.EnrollFunc: method is nil but enrollmentRepo.Enroll was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		CourseID uuid.UUID
	}{Ctx: ctx, UserID: userID, CourseID: courseID}
	mock.lockEnroll.Lock()
	mock.calls.Enroll = append(mock.calls.Enroll, callInfo)
	mock.lockEnroll.Unlock()
	return mock.EnrollFunc(ctx, userID, courseID)
}

func (mock *enrollmentRepoMock) EnrollCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	CourseID uuid.UUID
} {
	mock.lockEnroll.RLock()
	calls := mock.calls.Enroll
	mock.lockEnroll.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) Unenroll(ctx context.Context, userID, courseID uuid.UUID) error {
	if mock.UnenrollFunc == nil {
		panic("enrollmentRepoMock.UnenrollFunc: method is nil but enrollmentRepo.Unenroll was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		CourseID uuid.UUID
	}{Ctx: ctx, UserID: userID, CourseID: courseID}
	mock.lockUnenroll.Lock()
	mock.calls.Unenroll = append(mock.calls.Unenroll, callInfo)
	mock.lockUnenroll.Unlock()
	return mock.UnenrollFunc(ctx, userID, courseID)
}

func (mock *enrollmentRepoMock) UnenrollCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	CourseID uuid.UUID
} {
	mock.lockUnenroll.RLock()
	calls := mock.calls.Unenroll
	mock.lockUnenroll.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) CountByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	if mock.CountByCourseFunc == nil {
		panic("enrollmentRepoMock.CountByCourseFunc: method is nil but enrollmentRepo.CountByCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
	}{Ctx: ctx, CourseID: courseID}
	mock.lockCountByCourse.Lock()
	mock.calls.CountByCourse = append(mock.calls.CountByCourse, callInfo)
	mock.lockCountByCourse.Unlock()
	return mock.CountByCourseFunc(ctx, courseID)
}

func (mock *enrollmentRepoMock) CountByCourseCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
} {
	mock.lockCountByCourse.RLock()
	calls := mock.calls.CountByCourse
	mock.lockCountByCourse.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) CountByCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	if mock.CountByCoursesFunc == nil {
		panic("enrollmentRepoMock.CountByCoursesFunc: method is nil but enrollmentRepo.CountByCourses was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CourseIDs []uuid.UUID
	}{Ctx: ctx, CourseIDs: courseIDs}
	mock.lockCountByCourses.Lock()
	mock.calls.CountByCourses = append(mock.calls.CountByCourses, callInfo)
	mock.lockCountByCourses.Unlock()
	return mock.CountByCoursesFunc(ctx, courseIDs)
}

func (mock *enrollmentRepoMock) CountByCoursesCalls() []struct {
	Ctx       context.Context
	CourseIDs []uuid.UUID
} {
	mock.lockCountByCourses.RLock()
	calls := mock.calls.CountByCourses
	mock.lockCountByCourses.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) ListUsersByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.PublicUser, error) {
	if mock.ListUsersByCourseFunc == nil {
		panic("enrollmentRepoMock.ListUsersByCourseFunc: method is nil but enrollmentRepo.ListUsersByCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID uuid.UUID
	}{Ctx: ctx, CourseID: courseID}
	mock.lockListUsersByCourse.Lock()
	mock.calls.ListUsersByCourse = append(mock.calls.ListUsersByCourse, callInfo)
	mock.lockListUsersByCourse.Unlock()
	return mock.ListUsersByCourseFunc(ctx, courseID)
}

func (mock *enrollmentRepoMock) ListUsersByCourseCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
} {
	mock.lockListUsersByCourse.RLock()
	calls := mock.calls.ListUsersByCourse
	mock.lockListUsersByCourse.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) ListCourseIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListCourseIDsByUserFunc == nil {
		panic("enrollmentRepoMock.ListCourseIDsByUserFunc: method is nil but enrollmentRepo.ListCourseIDsByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListCourseIDsByUser.Lock()
	mock.calls.ListCourseIDsByUser = append(mock.calls.ListCourseIDsByUser, callInfo)
	mock.lockListCourseIDsByUser.Unlock()
	return mock.ListCourseIDsByUserFunc(ctx, userID)
}

func (mock *enrollmentRepoMock) ListCourseIDsByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListCourseIDsByUser.RLock()
	calls := mock.calls.ListCourseIDsByUser
	mock.lockListCourseIDsByUser.RUnlock()
	return calls
}

func (mock *enrollmentRepoMock) DeleteByCourse(ctx context.Context, courseID uuid.UUID) error {
	if mock.DeleteByCourseFunc == nil {
		panic("enrollmentRepoMock.DeleteByCourseFunc: method is nil but enrollmentRepo.DeleteByCourse was just called")
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

func (mock *enrollmentRepoMock) DeleteByCourseCalls() []struct {
	Ctx      context.Context
	CourseID uuid.UUID
} {
	mock.lockDeleteByCourse.RLock()
	calls := mock.calls.DeleteByCourse
	mock.lockDeleteByCourse.RUnlock()
	return calls
}
