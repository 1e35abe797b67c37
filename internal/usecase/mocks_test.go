package usecase_test

import (
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type PropertyRepoMock struct{ mock.Mock }

func (m *PropertyRepoMock) List(ctx context.Context, q repo.PropertyListQuery) ([]model.Property, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Property)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *PropertyRepoMock) FindByID(ctx context.Context, id string) (model.Property, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Property)
	return p, args.Error(1)
}

func (m *PropertyRepoMock) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepoMock) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepoMock) ExistsByCodeExcept(ctx context.Context, code string, exceptID string) (bool, error) {
	args := m.Called(ctx, code, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepoMock) Create(ctx context.Context, p model.Property) (model.Property, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Property)
	return created, args.Error(1)
}

func (m *PropertyRepoMock) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

type OwnerRepoMock struct{ mock.Mock }

func (m *OwnerRepoMock) FindByID(ctx context.Context, id string) (model.Owner, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Owner)
	return o, args.Error(1)
}

func (m *OwnerRepoMock) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OwnerRepoMock) Create(ctx context.Context, o model.Owner) (model.Owner, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.Owner)
	return created, args.Error(1)
}

type AuditLogRepoMock struct{ mock.Mock }

func (m *AuditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

type PropertyImageRepoMock struct{ mock.Mock }

func (m *PropertyImageRepoMock) ClearCovers(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *PropertyImageRepoMock) Create(ctx context.Context, img model.PropertyImage) (model.PropertyImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.PropertyImage)
	return created, args.Error(1)
}

type PropertyTraceRepoMock struct{ mock.Mock }

func (m *PropertyTraceRepoMock) Create(ctx context.Context, t model.PropertyTrace) (model.PropertyTrace, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(model.PropertyTrace)
	return created, args.Error(1)
}

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	properties repo.PropertyRepository
	owners     repo.OwnerRepository
	images     repo.PropertyImageRepository
	traces     repo.PropertyTraceRepository
}

func (r *TxReposMock) Properties() repo.PropertyRepository  { return r.properties }
func (r *TxReposMock) Owners() repo.OwnerRepository         { return r.owners }
func (r *TxReposMock) Images() repo.PropertyImageRepository { return r.images }
func (r *TxReposMock) Traces() repo.PropertyTraceRepository { return r.traces }

var (
	_ repo.PropertyRepository      = (*PropertyRepoMock)(nil)
	_ repo.OwnerRepository         = (*OwnerRepoMock)(nil)
	_ repo.AuditLogRepository      = (*AuditLogRepoMock)(nil)
	_ repo.PropertyImageRepository = (*PropertyImageRepoMock)(nil)
	_ repo.PropertyTraceRepository = (*PropertyTraceRepoMock)(nil)
	_ repo.TransactionManager      = (*TxManagerMock)(nil)
	_ repo.TxRepos                 = (*TxReposMock)(nil)
)

type FileStorageMock struct{ mock.Mock }

func (m *FileStorageMock) SavePropertyImage(ctx context.Context, propertyID string, file usecase.FileResource) (string, error) {
	args := m.Called(ctx, propertyID, file)
	return args.String(0), args.Error(1)
}

// =====================
// Stubs
// =====================

type fileStub struct {
	name string
	size int64
}

func (f *fileStub) Filename() string { return f.name }
func (f *fileStub) Size() int64      { return f.size }
func (f *fileStub) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("data")), nil
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
