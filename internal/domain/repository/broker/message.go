package broker

// Message is one pin event read from a broker. Ack marks it handled for the consumer group;
// Nack leaves it to be delivered again.
type Message interface {
	Body() string
	Ack() error
	Nack() error
}
