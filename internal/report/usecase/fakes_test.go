package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"report-srv/internal/catalog"
	"report-srv/internal/model"
	"report-srv/internal/renderer"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

const testCatalog = `
reports:
  - id: X
    title: Report X
    url: reports/x
    keys: [total, rows]
    query: SELECT 1
  - id: payments
    title: Unbalanced Invoice Payments
    url: reports/finance/payments
    keys: [dateFrom, dateTo, rows, total]
    date_params: [dateFrom, dateTo]
    required_params: [dateFrom, dateTo]
    columns:
      - {key: reference, label: Invoice}
      - {key: balance, label: Balance, format: currency}
    query: SELECT reference, balance FROM invoice WHERE date BETWEEN $1 AND $2
    query_params: [dateFrom, dateTo]
`

var testNow = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Compute(ctx context.Context, opts repository.ComputeOptions) (model.Dataset, error) {
	args := m.Called(ctx, opts)
	ds, _ := args.Get(0).(model.Dataset)
	return ds, args.Error(1)
}

type fakeArchive struct {
	mu        sync.Mutex
	entries   map[string]*model.ArchiveEntry
	createErr error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{entries: map[string]*model.ArchiveEntry{}}
}

func (f *fakeArchive) CreateArchive(_ context.Context, opts repository.CreateArchiveOptions) (*model.ArchiveEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.entries[opts.Key]; ok {
		return nil, repository.ErrDuplicateKey
	}
	e := &model.ArchiveEntry{
		Key:        opts.Key,
		ReportID:   opts.ReportID,
		Label:      opts.Label,
		URL:        opts.URL,
		Renderer:   opts.Renderer,
		Parameters: opts.Parameters,
		CreatedBy:  opts.CreatedBy,
		CreatedAt:  opts.CreatedAt,
	}
	f.entries[e.Key] = e
	return e, nil
}

func (f *fakeArchive) GetArchiveByKey(_ context.Context, key string) (*model.ArchiveEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[key]
	if !ok {
		return nil, repository.ErrArchiveNotFound
	}
	return e, nil
}

func (f *fakeArchive) ListArchives(_ context.Context, opts repository.ListArchivesOptions) ([]*model.ArchiveEntry, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]*model.ArchiveEntry, 0)
	for _, e := range f.entries {
		if opts.ReportID == "" || e.ReportID == opts.ReportID {
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := min(opts.Offset, total)
	end := total
	if opts.Limit > 0 {
		end = min(start+opts.Limit, total)
	}
	return all[start:end], total, nil
}

type fakeCache struct {
	mu         sync.Mutex
	artifacts  map[string]model.Artifact
	lastParams map[string]map[string]any
	saveErr    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		artifacts:  map[string]model.Artifact{},
		lastParams: map[string]map[string]any{},
	}
}

func (f *fakeCache) GetArtifact(_ context.Context, hash string) (*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.artifacts[hash]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeCache) SaveArtifact(_ context.Context, hash string, a model.Artifact, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.artifacts[hash] = a
	return nil
}

func (f *fakeCache) GetLastParameters(_ context.Context, userID, reportID string) (map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastParams[userID+":"+reportID], nil
}

func (f *fakeCache) SaveLastParameters(_ context.Context, opts repository.SaveLastParametersOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.lastParams[opts.UserID+":"+opts.ReportID] = opts.Parameters
	return nil
}

type fakePublisher struct {
	events []report.ArchivedEvent
	err    error
}

func (f *fakePublisher) PublishArchived(_ context.Context, e report.ArchivedEvent) error {
	f.events = append(f.events, e)
	return f.err
}

type fakeMinIO struct {
	mu      sync.Mutex
	objects map[string][]byte
	meta    map[string]map[string]string
}

func newFakeMinIO() *fakeMinIO {
	return &fakeMinIO{objects: map[string][]byte{}, meta: map[string]map[string]string{}}
}

func (f *fakeMinIO) Connect(context.Context) error     { return nil }
func (f *fakeMinIO) HealthCheck(context.Context) error { return nil }
func (f *fakeMinIO) Close() error                      { return nil }

func (f *fakeMinIO) EnsureBucket(context.Context, string) error { return nil }

func (f *fakeMinIO) BucketExists(context.Context, string) (bool, error) { return true, nil }

func (f *fakeMinIO) UploadFile(_ context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	name := req.BucketName + "/" + req.ObjectName
	f.objects[name] = data
	f.meta[name] = req.Metadata
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(data))}, nil
}

func (f *fakeMinIO) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       fmt.Sprintf("http://minio.local/%s/%s?filename=%s", req.BucketName, req.ObjectName, req.FileName),
		ExpiresAt: testNow.Add(req.Expiry),
		Method:    minio.MethodGET,
	}, nil
}

func (f *fakeMinIO) GetFileInfo(_ context.Context, bucket, object string) (*minio.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[bucket+"/"+object]
	if !ok {
		return nil, minio.NewObjectNotFoundError(object)
	}
	return &minio.FileInfo{BucketName: bucket, ObjectName: object, Size: int64(len(data))}, nil
}

func (f *fakeMinIO) FileExists(ctx context.Context, bucket, object string) (bool, error) {
	_, err := f.GetFileInfo(ctx, bucket, object)
	return err == nil, nil
}

func (f *fakeMinIO) DeleteFile(_ context.Context, bucket, object string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, bucket+"/"+object)
	return nil
}

// stubRenderer fails every render with err.
type stubRenderer struct {
	err error
}

func (s stubRenderer) Render(context.Context, string, renderer.Input) (model.Artifact, error) {
	return model.Artifact{}, s.err
}

func (s stubRenderer) Close() error { return nil }

type testDeps struct {
	source    *mockSource
	archive   *fakeArchive
	cache     *fakeCache
	publisher *fakePublisher
	minio     *fakeMinIO
	renderer  renderer.Renderer
	cacheTTL  time.Duration
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	rdr, err := renderer.New(log.NewNop(), renderer.Config{Timeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdr.Close() })

	return &testDeps{
		source:    &mockSource{},
		archive:   newFakeArchive(),
		cache:     newFakeCache(),
		publisher: &fakePublisher{},
		minio:     newFakeMinIO(),
		renderer:  rdr,
		cacheTTL:  time.Minute,
	}
}

func (d *testDeps) useCase(t *testing.T) *implUseCase {
	t.Helper()

	cat, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	uc := New(log.NewNop(), cat, d.renderer, d.archive, d.source, d.cache, d.minio, d.publisher, Config{
		CacheTTL:       d.cacheTTL,
		SnapshotBucket: "reports",
	}).(*implUseCase)

	uc.now = func() time.Time { return testNow }
	n := 0
	uc.newKey = func() string {
		n++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
	}
	return uc
}

func strPtr(s string) *string {
	return &s
}

func datasetX() model.Dataset {
	return model.Dataset{
		"rows":  []map[string]any{{"name": "a"}, {"name": "b"}},
		"total": 2,
	}
}
