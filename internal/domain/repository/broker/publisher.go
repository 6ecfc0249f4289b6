package broker

import "context"

// Publisher announces stored pins. message is the pin encoded as JSON.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}
