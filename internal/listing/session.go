package listing

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "facilities-console/pkg/errors"
	"facilities-console/pkg/types"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// Fetcher загружает одну страницу списка. Обязан уважать ctx.
type Fetcher[T any] func(ctx context.Context, q types.ListQuery) (types.ListResponse[T], error)

// Notifier - то, что сессии нужно от сервиса уведомлений.
type Notifier interface {
	Error(message string)
}

type SessionOptions struct {
	Page     int
	Search   string
	Limit    int
	Debounce time.Duration
	Notifier Notifier
	Logger   *zap.Logger
	// Context ограничивает жизнь всех запросов сессии (запрос страницы или websocket).
	Context context.Context
}

// Snapshot - неизменяемая копия состояния для рендера.
type Snapshot[T any] struct {
	Page        int
	Pages       int
	Limit       int
	Search      string
	SearchInput string
	Rows        []T
	Total       int
	Status      Status
	Err         error
}

// Session - состояние одного экземпляра списка: страница, поиск, строки, статус.
// Каждая загрузка получает свой context; новая загрузка отменяет предыдущую,
// и записать результат может только последнее поколение.
type Session[T any] struct {
	mu sync.Mutex

	fetch    Fetcher[T]
	notifier Notifier
	logger   *zap.Logger
	baseCtx  context.Context

	limit       int
	page        int
	search      string
	searchInput string
	rows        []T
	pages       int
	total       int
	status      Status
	err         error

	gen       uint64
	cancel    context.CancelFunc
	inflight  sync.WaitGroup
	debouncer *Debouncer
	listeners []func(Snapshot[T])
	closed    bool
}

func NewSession[T any](fetch Fetcher[T], opts SessionOptions) *Session[T] {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	search := strings.TrimSpace(opts.Search)
	s := &Session[T]{
		fetch:       fetch,
		notifier:    opts.Notifier,
		logger:      opts.Logger,
		baseCtx:     opts.Context,
		limit:       opts.Limit,
		page:        opts.Page,
		search:      search,
		searchInput: search,
		pages:       1,
		status:      StatusIdle,
	}
	s.debouncer = NewDebouncer(opts.Debounce, s.commitSearch)
	return s
}

// Start выполняет первую загрузку.
func (s *Session[T]) Start() {
	s.refetch()
}

// SetSearchInput принимает очередной ввод поиска. Загрузка начнётся после паузы.
func (s *Session[T]) SetSearchInput(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.searchInput = text
	s.mu.Unlock()
	s.debouncer.Push(text)
}

func (s *Session[T]) commitSearch(text string) {
	text = strings.TrimSpace(text)
	s.mu.Lock()
	if s.closed || (text == s.search && s.page == 1 && s.status == StatusLoaded) {
		s.mu.Unlock()
		return
	}
	s.search = text
	s.page = 1
	s.mu.Unlock()
	s.refetch()
}

func (s *Session[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	if s.closed || (page == s.page && s.status == StatusLoaded) {
		s.mu.Unlock()
		return
	}
	s.page = page
	s.mu.Unlock()
	s.refetch()
}

// Reload повторяет загрузку с текущими параметрами, например после изменения данных.
func (s *Session[T]) Reload() {
	s.refetch()
}

func (s *Session[T]) OnChange(fn func(Snapshot[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Wait ждёт завершения запущенных загрузок.
func (s *Session[T]) Wait() {
	s.inflight.Wait()
}

func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close - размонтирование: отложенный поиск и текущий запрос отменяются.
func (s *Session[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.listeners = nil
	s.mu.Unlock()
	s.debouncer.Stop()
}

func (s *Session[T]) refetch() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(s.baseCtx)
	s.cancel = cancel
	q := types.ListQuery{Page: s.page, Limit: s.limit, Search: s.search}
	s.status = StatusLoading
	s.inflight.Add(1)
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	emit(listeners, snap)
	go s.run(ctx, cancel, gen, q)
}

func (s *Session[T]) run(ctx context.Context, cancel context.CancelFunc, gen uint64, q types.ListQuery) {
	defer s.inflight.Done()
	defer cancel()

	resp, err := s.fetch(ctx, q)

	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		s.logger.Debug("результат устаревшего запроса отброшен",
			zap.Int("page", q.Page), zap.String("search", q.Search))
		return
	}
	if err != nil && (apperrors.IsCanceled(err) || ctx.Err() != nil) {
		s.mu.Unlock()
		return
	}
	s.cancel = nil

	if err != nil {
		// строки прошлой загрузки остаются на экране
		s.status = StatusErrored
		s.err = err
		snap, listeners := s.snapshotLocked(), s.listenersLocked()
		s.mu.Unlock()

		s.logger.Warn("ошибка загрузки списка", zap.Error(err),
			zap.Int("page", q.Page), zap.String("search", q.Search))
		if s.notifier != nil {
			s.notifier.Error(apperrors.UserMessage(err))
		}
		emit(listeners, snap)
		return
	}

	s.rows = resp.Items
	s.pages = ResolvePageCount(resp.Meta, q.Page)
	s.total = len(resp.Items)
	if resp.Meta.Total.Valid {
		s.total = resp.Meta.Total.Int
	}
	s.status = StatusLoaded
	s.err = nil
	snap, listeners := s.snapshotLocked(), s.listenersLocked()
	s.mu.Unlock()

	emit(listeners, snap)
}

func (s *Session[T]) snapshotLocked() Snapshot[T] {
	rows := make([]T, len(s.rows))
	copy(rows, s.rows)
	return Snapshot[T]{
		Page:        s.page,
		Pages:       s.pages,
		Limit:       s.limit,
		Search:      s.search,
		SearchInput: s.searchInput,
		Rows:        rows,
		Total:       s.total,
		Status:      s.status,
		Err:         s.err,
	}
}

func (s *Session[T]) listenersLocked() []func(Snapshot[T]) {
	out := make([]func(Snapshot[T]), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func emit[T any](listeners []func(Snapshot[T]), snap Snapshot[T]) {
	for _, fn := range listeners {
		fn(snap)
	}
}
