package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CommitsOnlyLastValue(t *testing.T) {
	var mu sync.Mutex
	var got []string
	d := NewDebouncer(20*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	d.Push("c")
	d.Push("ca")
	d.Push("cam")
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"cam"}, got)
	assert.False(t, d.Pending())
}

func TestDebouncer_ZeroDelayIsSynchronous(t *testing.T) {
	var got []string
	d := NewDebouncer(0, func(v string) { got = append(got, v) })

	d.Push("a")
	d.Push("b")

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	called := make(chan string, 1)
	d := NewDebouncer(10*time.Millisecond, func(v string) { called <- v })

	d.Push("x")
	d.Stop()
	d.Push("y")

	select {
	case v := <-called:
		t.Fatalf("неожиданная фиксация %q", v)
	case <-time.After(50 * time.Millisecond):
	}
}
