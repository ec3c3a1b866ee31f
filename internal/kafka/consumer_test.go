package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

// scriptedReader replays a fixed sequence of messages, then fails.
type scriptedReader struct {
	messages []kafkaGo.Message
	finalErr error
	closed   bool
}

func (r *scriptedReader) ReadMessage(_ context.Context) (kafkaGo.Message, error) {
	if len(r.messages) == 0 {
		return kafkaGo.Message{}, r.finalErr
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *scriptedReader) Close() error {
	r.closed = true
	return nil
}

func eventMessage(t *testing.T, event BookingEvent) kafkaGo.Message {
	t.Helper()
	data, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkaGo.Message{Key: []byte(event.BookingID), Value: data}
}

func TestConsumer_Consume_DeliversDecodedEvents(t *testing.T) {
	first := BookingEvent{Type: EventBookingCreated, BookingID: "BOOK1", Email: "jane@example.com"}
	second := BookingEvent{Type: EventBookingStatusChanged, BookingID: "BOOK2", Status: "confirmed"}
	c := &Consumer{reader: &scriptedReader{
		messages: []kafkaGo.Message{eventMessage(t, first), eventMessage(t, second)},
		finalErr: io.EOF,
	}}

	var got []BookingEvent
	err := c.Consume(context.Background(), func(_ context.Context, event BookingEvent) error {
		got = append(got, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []BookingEvent{first, second}, got)
}

func TestConsumer_Consume_SkipsUndecodableMessages(t *testing.T) {
	valid := BookingEvent{Type: EventBookingCreated, BookingID: "BOOK1"}
	c := &Consumer{reader: &scriptedReader{
		messages: []kafkaGo.Message{
			{Value: []byte("{not json")},
			eventMessage(t, valid),
		},
		finalErr: io.EOF,
	}}

	var got []BookingEvent
	err := c.Consume(context.Background(), func(_ context.Context, event BookingEvent) error {
		got = append(got, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []BookingEvent{valid}, got)
}

func TestConsumer_Consume_HandlerErrorStopsLoop(t *testing.T) {
	c := &Consumer{reader: &scriptedReader{
		messages: []kafkaGo.Message{
			eventMessage(t, BookingEvent{Type: EventBookingCreated, BookingID: "BOOK1"}),
			eventMessage(t, BookingEvent{Type: EventBookingCreated, BookingID: "BOOK2"}),
		},
		finalErr: io.EOF,
	}}

	handlerErr := errors.New("archive unavailable")
	calls := 0
	err := c.Consume(context.Background(), func(_ context.Context, _ BookingEvent) error {
		calls++
		return handlerErr
	})

	assert.ErrorIs(t, err, handlerErr)
	assert.Equal(t, 1, calls)
}

func TestConsumer_Close(t *testing.T) {
	reader := &scriptedReader{}
	c := &Consumer{reader: reader}

	assert.NoError(t, c.Close())
	assert.True(t, reader.closed)

	var nilConsumer *Consumer
	assert.NoError(t, nilConsumer.Close())
}
