package store

import "sync"

// EventDataChanged is emitted after every committed snapshot. It carries no
// payload; subscribers must re-load the store.
const EventDataChanged = "dataChanged"

// Listener is invoked synchronously on the committing goroutine.
type Listener func()

// Broker fans a named change event out to registered listeners, whether the
// commit originated locally or in another handler goroutine.
type Broker struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string]map[int]Listener
}

func NewBroker() *Broker {
	return &Broker{
		listeners: make(map[string]map[int]Listener),
	}
}

// Subscribe registers fn for event and returns a token for Unsubscribe.
func (b *Broker) Subscribe(event string, fn Listener) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners[event] == nil {
		b.listeners[event] = make(map[int]Listener)
	}

	b.nextID++
	b.listeners[event][b.nextID] = fn

	return b.nextID
}

// Unsubscribe removes a previously registered listener. Unknown tokens are a
// no-op.
func (b *Broker) Unsubscribe(event string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if callbacks, exists := b.listeners[event]; exists {
		delete(callbacks, id)

		if len(callbacks) == 0 {
			delete(b.listeners, event)
		}
	}
}

// Notify invokes every listener registered for event.
func (b *Broker) Notify(event string) {
	b.mu.Lock()
	callbacks := make([]Listener, 0, len(b.listeners[event]))
	for _, fn := range b.listeners[event] {
		callbacks = append(callbacks, fn)
	}
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
