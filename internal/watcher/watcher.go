// Package watcher наблюдатель за нерешенными конфликтами редактирования.
// Инжектируемый компонент с явным Start/Stop (без глобального состояния):
// push-путь через PostgreSQL LISTEN/NOTIFY и poll-путь по таймеру.
// Только чтение; корректность не зависит от частоты опроса - записи
// о конфликтах durable до решения.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"
)

// PendingCounter источник количества нерешенных конфликтов
type PendingCounter interface {
	CountPending(ctx context.Context) (int, error)
}

// ConflictGauge приемник метрики количества конфликтов
type ConflictGauge interface {
	SetPendingConflicts(count int)
}

// Handler колбэк, вызываемый при каждом обновлении счетчика
type Handler func(count int)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Параметры реконнекта pq.Listener
const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
	countQueryTimeout    = 5 * time.Second
)

// Watcher периодически (и по push-событиям) пересчитывает количество
// нерешенных конфликтов и уведомляет подписчиков
type Watcher struct {
	counter      PendingCounter
	gauge        ConflictGauge
	handler      Handler
	logger       Logger
	pollInterval time.Duration

	// dsn и channel пустые, если push-путь отключен
	dsn     string
	channel string

	mu       sync.Mutex
	stopCh   chan struct{}
	doneCh   chan struct{}
	listener *pq.Listener
}

// New создает наблюдатель
// dsn/channel могут быть пустыми - тогда работает только poll-путь
func New(dsn, channel string, pollInterval time.Duration, counter PendingCounter, gauge ConflictGauge, handler Handler, logger Logger) *Watcher {
	return &Watcher{
		counter:      counter,
		gauge:        gauge,
		handler:      handler,
		logger:       logger,
		pollInterval: pollInterval,
		dsn:          dsn,
		channel:      channel,
	}
}

// Start запускает наблюдение; повторный Start без Stop - no-op
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopCh != nil {
		return
	}

	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	var notifyCh <-chan *pq.Notification
	if w.dsn != "" && w.channel != "" {
		w.listener = pq.NewListener(w.dsn, listenerMinReconnect, listenerMaxReconnect, w.onListenerEvent)
		if err := w.listener.Listen(w.channel); err != nil {
			// Push-путь не критичен: падаем обратно на poll
			w.logger.Warn("watcher: failed to listen on %s, falling back to polling only: %v", w.channel, err)
			w.listener.Close()
			w.listener = nil
		} else {
			notifyCh = w.listener.Notify
			w.logger.Info("watcher: listening for push events on channel %s", w.channel)
		}
	}

	go w.run(notifyCh)
}

// Stop останавливает наблюдение и дожидается завершения цикла
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopCh == nil {
		return
	}

	close(w.stopCh)
	<-w.doneCh
	w.stopCh = nil
	w.doneCh = nil

	if w.listener != nil {
		w.listener.Close()
		w.listener = nil
	}
}

// Refresh принудительно пересчитывает счетчик (используется при старте и в тестах)
func (w *Watcher) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), countQueryTimeout)
	defer cancel()

	count, err := w.counter.CountPending(ctx)
	if err != nil {
		w.logger.Error("watcher: failed to count pending conflicts: %v", err)
		return
	}

	if w.gauge != nil {
		w.gauge.SetPendingConflicts(count)
	}
	if w.handler != nil {
		w.handler(count)
	}
}

func (w *Watcher) run(notifyCh <-chan *pq.Notification) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Refresh()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Refresh()
		case n := <-notifyCh:
			// nil приходит при реконнекте listener-а; состояние могло
			// измениться за время разрыва, поэтому тоже пересчитываем
			if n != nil {
				w.logger.Info("watcher: conflicts change event (%s)", n.Extra)
			}
			w.Refresh()
		}
	}
}

func (w *Watcher) onListenerEvent(event pq.ListenerEventType, err error) {
	if err != nil {
		w.logger.Warn("watcher: listener event %d: %v", event, err)
	}
}
