package profileRepo

import (
	"context"
	"sync"

	"github.com/TolikMuradov/AstroCalendar/internal/ports/persistence"
	"github.com/jmoiron/sqlx"
)

var _ persistence.Persistence = &persistenceMock{}

type persistenceMock struct {
	GetFunc  func(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecFunc func(ctx context.Context, query string, args ...interface{}) error

	calls struct {
		Get []struct {
			Query string
			Args  []interface{}
		}
		Exec []struct {
			Query string
			Args  []interface{}
		}
	}
	lockGet  sync.RWMutex
	lockExec sync.RWMutex
}

func (mock *persistenceMock) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if mock.GetFunc == nil {
		panic("persistenceMock.GetFunc: method is nil but Persistence.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Query string
		Args  []interface{}
	}{Query: query, Args: args})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, dest, query, args...)
}

func (mock *persistenceMock) GetCalls() []struct {
	Query string
	Args  []interface{}
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

func (mock *persistenceMock) Exec(ctx context.Context, query string, args ...interface{}) error {
	if mock.ExecFunc == nil {
		panic("persistenceMock.ExecFunc: method is nil but Persistence.Exec was just called")
	}
	mock.lockExec.Lock()
	mock.calls.Exec = append(mock.calls.Exec, struct {
		Query string
		Args  []interface{}
	}{Query: query, Args: args})
	mock.lockExec.Unlock()
	return mock.ExecFunc(ctx, query, args...)
}

func (mock *persistenceMock) ExecCalls() []struct {
	Query string
	Args  []interface{}
} {
	mock.lockExec.RLock()
	defer mock.lockExec.RUnlock()
	return mock.calls.Exec
}

func (mock *persistenceMock) Select(context.Context, interface{}, string, ...interface{}) error {
	panic("persistenceMock.Select: not expected")
}

func (mock *persistenceMock) ExecWithResult(context.Context, string, ...interface{}) (int64, error) {
	panic("persistenceMock.ExecWithResult: not expected")
}

func (mock *persistenceMock) NamedExec(context.Context, string, interface{}) error {
	panic("persistenceMock.NamedExec: not expected")
}

func (mock *persistenceMock) QueryRow(context.Context, string, ...interface{}) *sqlx.Row {
	panic("persistenceMock.QueryRow: not expected")
}

func (mock *persistenceMock) Ping(context.Context) error {
	return nil
}
