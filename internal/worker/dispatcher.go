package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mymmrac/telego"

	"tg_dealscan/pkg/logx"
)

// Dispatcher читает обновления long polling в порядке поступления, выдаёт им билеты
// в Sequencer и передаёт дальше обработчикам, которые работают параллельно.
type Dispatcher struct {
	sequencer *Sequencer
	in        <-chan telego.Update
	out       chan telego.Update

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewDispatcher(sequencer *Sequencer, in <-chan telego.Update) *Dispatcher {
	return &Dispatcher{
		sequencer: sequencer,
		in:        in,
		out:       make(chan telego.Update),
	}
}

// Updates канал для обработчика бота. Закрывается, когда Dispatcher останавливается.
func (d *Dispatcher) Updates() <-chan telego.Update {
	return d.out
}

func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isRunning {
		return errors.New("dispatcher is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancelFunc = cancel
	d.isRunning = true

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			d.mu.Lock()
			d.isRunning = false
			d.cancelFunc = nil
			d.mu.Unlock()
		}()

		d.Run(runCtx)
	}()

	return nil
}

func (d *Dispatcher) Stop() {
	d.mu.Lock()

	if !d.isRunning {
		d.mu.Unlock()
		return
	}

	if d.cancelFunc != nil {
		d.cancelFunc()
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) IsRunning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.isRunning
}

// Run пересылает обновления до закрытия входного канала или отмены контекста.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.out)

	logger(ctx).Info("update dispatcher started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("update dispatcher stopped")
			return
		case update, ok := <-d.in:
			if !ok {
				logger(ctx).Info("update dispatcher stopped", slog.String("reason", "updates channel closed"))
				return
			}

			if session, ok := UpdateSession(update); ok {
				d.sequencer.Stamp(update.UpdateID, session)
			}

			select {
			case d.out <- update:
			case <-ctx.Done():
				logger(ctx).Warn("update dropped on shutdown", slog.Int(logx.FieldUpdateID, update.UpdateID))
				return
			}
		}
	}
}

// UpdateSession сессия события, которое требует упорядочивания: текстовое сообщение
// или нажатие кнопки под сообщением бота.
func UpdateSession(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.GetChat().ID, true
	default:
		return 0, false
	}
}
