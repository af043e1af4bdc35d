package realtime

import "github.com/Ruidozo/fam-backoffice/entity"

// OrderNotifier bridges order lifecycle events onto the hub.
type OrderNotifier struct {
	hub *Hub
}

func NewOrderNotifier(hub *Hub) *OrderNotifier {
	return &OrderNotifier{hub: hub}
}

func (n *OrderNotifier) NotifyOrderEvent(event string, o *entity.Order) {
	n.hub.Broadcast(event, o)
}
