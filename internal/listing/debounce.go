package listing

import (
	"sync"
	"time"
)

// Debouncer фиксирует последнее значение после паузы во вводе.
// При delay == 0 значение фиксируется сразу и синхронно (режим тестов).
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	commit  func(string)
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	return &Debouncer{delay: delay, commit: commit}
}

// Push запоминает значение и перезапускает таймер. Из серии вызовов
// зафиксировано будет только последнее.
func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		d.commit(value)
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// таймер мог сработать уже после Stop или нового Push
		if d.stopped || seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.commit(value)
	})
	d.mu.Unlock()
}

// Pending сообщает, ждёт ли значение фиксации.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
