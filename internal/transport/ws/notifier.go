package ws

import (
	"log"

	"github.com/vedran77/skillswap/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifySwapCreated tells the receiver a new request arrived.
func (n *HubNotifier) NotifySwapCreated(req *domain.SwapRequest) {
	evt, err := NewEvent(EventTypeSwapNew, SwapRequestPayload{Request: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(req.ToUserID, evt)
}

// NotifySwapUpdated tells both participants the status changed.
func (n *HubNotifier) NotifySwapUpdated(req *domain.SwapRequest) {
	evt, err := NewEvent(EventTypeSwapUpdated, SwapRequestPayload{Request: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(req.FromUserID, evt)
	n.hub.SendToUser(req.ToUserID, evt)
}

// NotifySwapDeleted tells both participants the request is gone.
func (n *HubNotifier) NotifySwapDeleted(req *domain.SwapRequest) {
	evt, err := NewEvent(EventTypeSwapDeleted, SwapDeletedPayload{ID: req.ID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(req.FromUserID, evt)
	n.hub.SendToUser(req.ToUserID, evt)
}
