package infra

import "sync"

// Notifier is a key-scoped publish/subscribe channel: every subscriber of a
// storage key is told after a writer mutates it. It is the in-process half of
// the cross-context change signal; the websocket hub relays it to clients.
type Notifier interface {
	Subscribe(key string) (<-chan string, func())
	Publish(key string)
}

type keyNotifier struct {
	mu   sync.Mutex
	subs map[string]map[int]chan string
	next int
}

func NewNotifier() Notifier {
	return &keyNotifier{subs: make(map[string]map[int]chan string)}
}

func (n *keyNotifier) Subscribe(key string) (<-chan string, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs[key] == nil {
		n.subs[key] = make(map[int]chan string)
	}
	id := n.next
	n.next++

	ch := make(chan string, 8)
	n.subs[key][id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[key][id]; ok {
			delete(n.subs[key], id)
			close(sub)
		}
	}
	return ch, cancel
}

func (n *keyNotifier) Publish(key string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, ch := range n.subs[key] {
		select {
		case ch <- key:
		default:
			// Slow subscriber; drop it rather than block the writer.
			delete(n.subs[key], id)
			close(ch)
		}
	}
}
