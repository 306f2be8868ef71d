package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"report-srv/config"
	"report-srv/internal/report"
	"report-srv/internal/report/mocks"
	"report-srv/pkg/log"
)

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "member" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "report.archived" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func newTestConsumer(t *testing.T) (*consumer, *mocks.UseCase) {
	t.Helper()

	uc := mocks.NewUseCase(t)
	c, err := New(Config{
		Logger:      log.NewNop(),
		KafkaConfig: config.KafkaConfig{Brokers: []string{"localhost:9092"}},
		UseCase:     uc,
	})
	require.NoError(t, err)
	return c.(*consumer), uc
}

func message(offset int64, value string) *sarama.ConsumerMessage {
	return &sarama.ConsumerMessage{Topic: "report.archived", Offset: offset, Value: []byte(value)}
}

func TestHandleArchivedMessage(t *testing.T) {
	tcs := map[string]struct {
		value       string
		snapshotErr error
		callsUC     bool
		wantErr     bool
	}{
		"snapshot stored": {
			value:   `{"key":"k-1","report_id":"X","created_at":"2024-03-15T08:00:00Z"}`,
			callsUC: true,
		},
		"malformed json is skipped": {
			value: `{"key":`,
		},
		"missing key is skipped": {
			value: `{"report_id":"X"}`,
		},
		"deleted archive is skipped": {
			value:       `{"key":"k-1"}`,
			snapshotErr: report.ErrArchiveNotFound,
			callsUC:     true,
		},
		"storage failure is reported": {
			value:       `{"key":"k-1"}`,
			snapshotErr: report.ErrSaveFailed,
			callsUC:     true,
			wantErr:     true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c, uc := newTestConsumer(t)
			if tc.callsUC {
				uc.On("Snapshot", mock.Anything, report.SnapshotInput{Key: "k-1"}).Return(tc.snapshotErr)
			}

			err := c.handleArchivedMessage(context.Background(), message(1, tc.value))
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, report.ErrSaveFailed))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConsumeClaimMarksEveryMessage(t *testing.T) {
	c, uc := newTestConsumer(t)
	uc.On("Snapshot", mock.Anything, report.SnapshotInput{Key: "ok"}).Return(nil)
	uc.On("Snapshot", mock.Anything, report.SnapshotInput{Key: "flaky"}).Return(report.ErrSaveFailed)

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
	claim.messages <- message(1, `{"key":"ok"}`)
	claim.messages <- message(2, `{"key":"flaky"}`)
	claim.messages <- message(3, `garbage`)
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	h := &archivedHandler{consumer: c}

	require.NoError(t, h.Setup(session))
	require.NoError(t, h.ConsumeClaim(session, claim))
	require.NoError(t, h.Cleanup(session))

	assert.Equal(t, []int64{1, 2, 3}, session.marked)
}

func TestNewValidates(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), UseCase: mocks.NewUseCase(t)})
	assert.Error(t, err)

	_, err = New(Config{Logger: log.NewNop(), KafkaConfig: config.KafkaConfig{Brokers: []string{"b:9092"}}})
	assert.Error(t, err)
}
