package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-mod-manager/models"
)

// notifier fans status updates out to listeners in subscription order.
// Listeners are called after the registry lock was released, so they may
// call back into the publishing service.
type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners []subscription
}

type subscription struct {
	id       int
	listener models.StatusListener
}

func newNotifier() *notifier {
	return &notifier{}
}

func (n *notifier) subscribe(listener models.StatusListener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, subscription{id: id, listener: listener})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.listeners = slices.DeleteFunc(n.listeners, func(s subscription) bool { return s.id == id })
	}
}

func (n *notifier) publish(update models.StatusUpdate) {
	n.mu.Lock()
	listeners := make([]models.StatusListener, 0, len(n.listeners))
	for _, s := range n.listeners {
		listeners = append(listeners, s.listener)
	}
	n.mu.Unlock()

	for _, l := range listeners {
		l(update)
	}
}
