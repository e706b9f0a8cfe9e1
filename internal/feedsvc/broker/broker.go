package broker

import (
	"encoding/json"

	"github.com/avvvet/card-services/internal/comm"
	"github.com/avvvet/card-services/internal/feedsvc/ws"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

type Broker struct {
	Conn *nats.Conn
	feed *ws.Ws
}

func NewBroker(conn *nats.Conn, feed *ws.Ws) *Broker {
	return &Broker{Conn: conn, feed: feed}
}

// Subscribe consumes scan events from the card service.
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleScanEvent)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// handleScanEvent relays one scan event to every connected dashboard.
func (b *Broker) handleScanEvent(msgNats *nats.Msg) {
	event := &comm.ScanEvent{}
	if err := json.Unmarshal(msgNats.Data, event); err != nil {
		log.Errorf("Error decoding scan event %s", err)
		return
	}

	message := comm.FeedMessage{
		Type: "scan",
		Data: msgNats.Data,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		log.Errorf("Error encoding feed message %s", err)
		return
	}

	b.feed.Broadcast(payload)
}
