// Package broadcast pushes wisdom updates to display screens over MQTT.
package broadcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

// ErrDisabled is returned when no broker is configured.
var ErrDisabled = errors.New("broadcast disabled: no MQTT broker configured")

const publishTimeout = 10 * time.Second

// client is the subset of mqtt.Client the publisher uses.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Message is the payload screens receive.
type Message struct {
	Type      string        `json:"type"`
	Hadith    model.Hadith  `json:"hadith"`
	Proverb   model.Proverb `json:"proverb"`
	Timestamp int64         `json:"timestamp"`
}

// Publisher publishes retained wisdom updates so a screen that turns on
// later still receives the latest one.
type Publisher struct {
	client client
	topic  string
	now    func() time.Time
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("[broadcast] connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("[broadcast] MQTT connection lost")
}

// Connect dials brokerURL and returns a Publisher for topic.
func Connect(brokerURL, clientID, topic string) (*Publisher, error) {
	if brokerURL == "" {
		return nil, ErrDisabled
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	c := mqtt.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("connect to MQTT broker %s: timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to MQTT broker %s: %w", brokerURL, err)
	}

	return newPublisher(c, topic), nil
}

func newPublisher(c client, topic string) *Publisher {
	return &Publisher{client: c, topic: topic, now: time.Now}
}

// Topic is the topic updates are published to.
func (p *Publisher) Topic() string {
	return p.topic
}

// Publish sends w to every subscribed screen.
func (p *Publisher) Publish(w model.Wisdom) error {
	payload, err := json.Marshal(Message{
		Type:      "wisdom_update",
		Hadith:    w.Hadith,
		Proverb:   w.Proverb,
		Timestamp: p.now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("encode wisdom update: %w", err)
	}

	token := p.client.Publish(p.topic, 1, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s: timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	log.Info().Str("topic", p.topic).Str("hadith", w.Hadith.ID).Str("proverb", w.Proverb.ID).Msg("[broadcast] wisdom published")
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
