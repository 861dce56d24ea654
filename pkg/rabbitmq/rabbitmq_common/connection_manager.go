package rabbitmq_common

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errEmptyURL = errors.New("rabbitmq: URL is required")

const defaultReconnectInterval = 10 * time.Second

// ConnectionManager держит одно AMQP-соединение на процесс и
// восстанавливает его в фоне, если брокер его оборвал
type ConnectionManager struct {
	url    string
	Logger Logger

	mu   sync.RWMutex
	conn *amqp.Connection

	reconnectInterval time.Duration
	stop              context.CancelFunc
	done              chan struct{}
}

// NewManager подключается сразу: сервис без брокера не должен стартовать
// с включенной отправкой заявок
func NewManager(url string, logger Logger) (*ConnectionManager, error) {
	if url == "" {
		return nil, errEmptyURL
	}
	if logger == nil {
		logger = NewNoopLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &ConnectionManager{
		url:               url,
		Logger:            logger,
		reconnectInterval: defaultReconnectInterval,
		stop:              cancel,
		done:              make(chan struct{}),
	}

	if _, err := m.ensureConnected(); err != nil {
		cancel()
		logger.Error(err, "rabbitmq: first dial failed", "reconnect_interval", m.reconnectInterval.String())
		return nil, fmt.Errorf("rabbitmq: connect: %w", err)
	}

	go m.watch(ctx)
	return m, nil
}

// alive возвращает текущее соединение, если оно открыто
func (m *ConnectionManager) alive() *amqp.Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.conn == nil || m.conn.IsClosed() {
		return nil
	}
	return m.conn
}

func (m *ConnectionManager) ensureConnected() (*amqp.Connection, error) {
	if conn := m.alive(); conn != nil {
		return conn, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// повторная проверка под записью
	if m.conn != nil && !m.conn.IsClosed() {
		return m.conn, nil
	}

	m.Logger.Debug("rabbitmq: dialing broker")
	conn, err := amqp.Dial(m.url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	m.conn = conn
	m.Logger.Info("rabbitmq: connection established")
	return conn, nil
}

// GetChannel открывает новый канал на общем соединении.
// Канал принадлежит вызывающему, соединение - менеджеру.
func (m *ConnectionManager) GetChannel() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := m.ensureConnected()
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return conn, nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	return conn, ch, nil
}

func (m *ConnectionManager) watch(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.reconnectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if m.alive() != nil {
			continue
		}
		m.Logger.Warn("rabbitmq: connection lost, redialing")
		if _, err := m.ensureConnected(); err != nil {
			m.Logger.Error(err, "rabbitmq: redial failed")
		}
	}
}

// Close останавливает фоновую проверку и закрывает соединение
func (m *ConnectionManager) Close() error {
	m.stop()
	<-m.done

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil || m.conn.IsClosed() {
		return nil
	}
	if err := m.conn.Close(); err != nil {
		m.Logger.Error(err, "rabbitmq: close connection")
		return err
	}
	m.conn = nil
	m.Logger.Info("rabbitmq: connection closed")
	return nil
}
