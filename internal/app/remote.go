package app

import "github.com/llehouerou/marquee/internal/carousel"

const remoteQueueSize = 8

// RemoteQueue implements mpris.Remote. D-Bus calls arrive on their own
// goroutines; the queue hands them to the update loop as RemoteMsg.
type RemoteQueue chan carousel.Direction

// NewRemoteQueue creates an empty queue.
func NewRemoteQueue() RemoteQueue {
	return make(RemoteQueue, remoteQueueSize)
}

// Next implements mpris.Remote.
func (q RemoteQueue) Next() { q.push(carousel.Next) }

// Previous implements mpris.Remote.
func (q RemoteQueue) Previous() { q.push(carousel.Prev) }

// push drops the request when the loop is behind.
func (q RemoteQueue) push(d carousel.Direction) {
	select {
	case q <- d:
	default:
	}
}
