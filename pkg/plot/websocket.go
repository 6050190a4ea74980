package plot

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raykavin/coinstats/pkg/chart"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/logger"
	"github.com/raykavin/coinstats/pkg/render"
)

// inbound is a frame sent by the page
type inbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// selectPayload carries a selection change; empty fields keep their value
type selectPayload struct {
	Coin   string `json:"coin"`
	Metric string `json:"metric"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func (p selectPayload) query() url.Values {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}

	set("coin", p.Coin)
	set("metric", p.Metric)
	set("start", p.Start)
	set("end", p.End)
	return query
}

// hoverPayload carries the pointer position as unix milliseconds
type hoverPayload struct {
	At int64 `json:"at"`
}

// WebSocketManager gives every page connection its own chart controller.
// Selection changes redraw, pointer moves query the nearest point.
type WebSocketManager struct {
	sync.RWMutex
	clients    map[*websocket.Conn]*chart.Controller
	upgrader   websocket.Upgrader
	collection core.SeriesCollection
	renderer   *render.ImageRenderer
	defaults   []chart.Option
	log        logger.Logger
}

// NewWebSocketManager creates a manager drawing from collection. Plans sent
// to the page carry the plot area of renderer.
func NewWebSocketManager(collection core.SeriesCollection, renderer *render.ImageRenderer,
	log logger.Logger, defaults ...chart.Option) *WebSocketManager {
	return &WebSocketManager{
		clients: make(map[*websocket.Conn]*chart.Controller),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		collection: collection,
		renderer:   renderer,
		defaults:   defaults,
		log:        log,
	}
}

// Clients returns the number of connected pages
func (m *WebSocketManager) Clients() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// HandleWebSocket upgrades the request and serves the connection until it closes
func (m *WebSocketManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	controller, err := chart.NewController(m.collection, m.log, m.defaults...)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.Error("Failed to upgrade connection to WebSocket: ", err)
		return
	}

	m.Lock()
	m.clients[conn] = controller
	count := len(m.clients)
	m.Unlock()
	m.log.Debugf("WebSocket client connected, total: %d", count)

	m.send(conn, "plan", describePlan(m.renderer, controller.Plan()))
	m.handleClient(conn, controller)
}

func (m *WebSocketManager) handleClient(conn *websocket.Conn, controller *chart.Controller) {
	defer func() {
		m.Lock()
		delete(m.clients, conn)
		remaining := len(m.clients)
		m.Unlock()
		conn.Close()
		m.log.Debugf("WebSocket client disconnected, remaining: %d", remaining)
	}()

	conn.SetPingHandler(func(string) error {
		return conn.WriteControl(websocket.PongMessage, []byte{}, time.Now().Add(10*time.Second))
	})

	for {
		var frame inbound
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				m.log.Error("WebSocket read error: ", err)
			}
			return
		}

		kind, payload, err := m.dispatch(controller, frame)
		if err != nil {
			m.send(conn, "error", map[string]string{"message": err.Error()})
			continue
		}
		m.send(conn, kind, payload)
	}
}

// dispatch applies one page event to the controller and builds the reply
func (m *WebSocketManager) dispatch(controller *chart.Controller, frame inbound) (string, any, error) {
	switch frame.Type {
	case "select":
		var payload selectPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return "", nil, fmt.Errorf("%w: %v", errBadParameter, err)
		}

		selection, err := parseSelection(payload.query(), controller.Selection())
		if err != nil {
			return "", nil, err
		}

		p, err := controller.Select(selection)
		if err != nil {
			return "", nil, err
		}
		return "plan", describePlan(m.renderer, p), nil

	case "hover":
		var payload hoverPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return "", nil, fmt.Errorf("%w: %v", errBadParameter, err)
		}

		t, err := controller.Hover(time.UnixMilli(payload.At).UTC())
		if err != nil {
			return "", nil, err
		}
		return "tooltip", newTooltip(t), nil

	default:
		return "", nil, fmt.Errorf("%w: unknown message type %q", errBadParameter, frame.Type)
	}
}

func (m *WebSocketManager) send(conn *websocket.Conn, kind string, payload any) {
	if err := conn.WriteJSON(message{Type: kind, Payload: payload}); err != nil {
		m.log.Error("Error sending WebSocket message: ", err)
	}
}
