package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	sync.Mutex
	got []int
}

func (s *sink) push(v ...int) error {
	s.Lock()
	defer s.Unlock()
	s.got = append(s.got, v...)
	return nil
}

func (s *sink) values() []int {
	s.Lock()
	defer s.Unlock()
	return append([]int(nil), s.got...)
}

func TestPusherFlushesOnTick(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[int](10*time.Millisecond), WithElements(1, 2))
	p.Start()
	p.AddMessages(3)

	assert.Eventually(t, func() bool { return len(s.values()) == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Stop())
	assert.Equal(t, []int{1, 2, 3}, s.values())
}

func TestPusherStopFlushes(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithPushInterval[int](time.Hour))
	p.Start()
	p.AddMessages(4, 5)

	require.NoError(t, p.Stop())
	assert.Equal(t, []int{4, 5}, s.values())
	assert.Zero(t, p.Len())
	assert.NoError(t, p.Stop())
}

func TestPusherKeepsBufferOnError(t *testing.T) {
	boom := errors.New("boom")
	var (
		mu     sync.Mutex
		errs   []error
		failed = true
	)

	p := NewPusher(
		WithPushInterval[int](time.Hour),
		WithPushLogic(func(...int) error {
			if failed {
				return boom
			}
			return nil
		}),
		WithErrorHandler[int](func(err error) {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
		}),
	)

	p.AddMessages(1)
	assert.ErrorIs(t, p.PushAll(), boom)
	assert.Equal(t, 1, p.Len())

	failed = false
	assert.NoError(t, p.PushAll())
	assert.Zero(t, p.Len())
	assert.Empty(t, errs)
}
