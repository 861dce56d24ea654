package rabbitmq_producer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shortlet-service/pkg/rabbitmq/rabbitmq_common"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errClosed = errors.New("producer: closed")

// PublisherConfig описывает обменник, в который пишет издатель
type PublisherConfig struct {
	rabbitmq_common.Config
	ExchangeName    string // пустая строка - default exchange
	ExchangeType    string // direct, fanout, topic, headers
	DurableExchange bool
	// DeclareExchangeIfMissing - объявлять обменник при каждом открытии канала
	DeclareExchangeIfMissing bool

	Logger rabbitmq_common.Logger
}

func (c PublisherConfig) validate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DeclareExchangeIfMissing && (c.ExchangeName == "" || c.ExchangeType == "") {
		return errors.New("producer: exchange name and type are required to declare an exchange")
	}
	return nil
}

// Publisher пишет в один обменник. Если брокер закрыл канал,
// следующий Publish открывает новый через ConnectionManager.
type Publisher struct {
	cfg     PublisherConfig
	manager *rabbitmq_common.ConnectionManager

	mu      sync.Mutex // amqp.Channel не потокобезопасен
	channel *amqp.Channel
	closed  bool

	Logger rabbitmq_common.Logger
}

func NewPublisher(cfg PublisherConfig, manager *rabbitmq_common.ConnectionManager) (*Publisher, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("producer: invalid config: %w", err)
	}
	if manager == nil {
		return nil, errors.New("producer: connection manager is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = rabbitmq_common.NewNoopLogger()
	}

	p := &Publisher{cfg: cfg, manager: manager, Logger: logger}
	if err := p.openChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

// openChannel вызывается под p.mu либо до публикации указателя
func (p *Publisher) openChannel() error {
	_, ch, err := p.manager.GetChannel()
	if err != nil {
		return fmt.Errorf("producer: channel: %w", err)
	}

	if p.cfg.DeclareExchangeIfMissing {
		err = ch.ExchangeDeclare(
			p.cfg.ExchangeName,
			p.cfg.ExchangeType,
			p.cfg.DurableExchange,
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			_ = ch.Close()
			return fmt.Errorf("producer: declare exchange %q: %w", p.cfg.ExchangeName, err)
		}
	}

	p.channel = ch
	p.Logger.Debug("producer: channel ready", "exchange", p.cfg.ExchangeName, "type", p.cfg.ExchangeType)
	return nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errClosed
	}
	if p.channel == nil || p.channel.IsClosed() {
		p.Logger.Warn("producer: channel is closed, reopening", "exchange", p.cfg.ExchangeName)
		if err := p.openChannel(); err != nil {
			return err
		}
	}

	if err := p.channel.PublishWithContext(ctx, p.cfg.ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("producer: publish to %q with key %q: %w", p.cfg.ExchangeName, routingKey, err)
	}
	return nil
}

// Close закрывает только канал, соединение остается за ConnectionManager
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel == nil {
		return nil
	}
	ch := p.channel
	p.channel = nil
	if err := ch.Close(); err != nil {
		p.Logger.Error(err, "producer: close channel")
		return err
	}
	p.Logger.Info("producer: closed", "exchange", p.cfg.ExchangeName)
	return nil
}
