// Package realtime subscribes to row changes of remote tables over the
// backend's Phoenix channel socket.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"todo/config"
	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/util"

	"github.com/coder/websocket"
	"github.com/sethvargo/go-retry"
)

const (
	socketPath      = "/realtime/v1/websocket"
	protocolVersion = "1.0.0"
	defaultSchema   = "public"

	defaultHeartbeat = 25 * time.Second
	joinTimeout      = 10 * time.Second
	leaveTimeout     = 5 * time.Second
	maxBackoff       = 30 * time.Second
	readLimit        = 1 << 20
)

var (
	// ErrClosed is returned by Subscribe after Close.
	ErrClosed = errors.New("realtime client closed")

	errNotConnected = errors.New("realtime socket not connected")
	errConnLost     = errors.New("realtime socket lost while waiting for reply")
)

// Client is a RealtimeService over one shared websocket. Channels are
// reference counted per table and rejoined after a reconnect.
type Client struct {
	baseURL     string
	apiKey      string
	tokens      service.TokenSource
	logger      *slog.Logger
	heartbeat   time.Duration
	maxAttempts uint64
	baseDelay   time.Duration

	ref        atomic.Uint64
	connectMu  sync.Mutex // serialises dials
	lifeCtx    context.Context
	lifeCancel context.CancelFunc
	wg         sync.WaitGroup

	mu       sync.Mutex
	conn     *websocket.Conn
	connDone chan struct{} // closed when the current conn's read loop exits
	channels map[string]*channel
	pending  map[string]chan replyPayload
	closed   bool
}

var _ service.RealtimeService = (*Client)(nil)

// NewClient creates a Client. Nothing is dialed until the first Subscribe.
func NewClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		baseURL:     cfg.Backend.URL,
		apiKey:      cfg.Backend.PublishableKey,
		tokens:      tokens,
		logger:      logger,
		heartbeat:   defaultHeartbeat,
		maxAttempts: 10,
		baseDelay:   time.Second,
		lifeCtx:     ctx,
		lifeCancel:  cancel,
		channels:    make(map[string]*channel),
		pending:     make(map[string]chan replyPayload),
	}

	if rt := cfg.Realtime; rt != nil {
		if rt.HeartbeatInterval > 0 {
			c.heartbeat = rt.HeartbeatInterval
		}
		if rt.ReconnectMaxAttempts > 0 {
			c.maxAttempts = rt.ReconnectMaxAttempts
		}
		if rt.ReconnectBaseDelay > 0 {
			c.baseDelay = rt.ReconnectBaseDelay
		}
	}

	return c
}

// Subscribe registers handler for row changes of table, joining its channel
// on first use. Subscribers that arrive while that join is in flight wait for
// its outcome and fail with it.
func (c *Client) Subscribe(ctx context.Context, table string, handler service.ChangeHandler) (service.Subscription, error) {
	if err := c.ensureConnected(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil, ErrClosed
	}
	ch := newChannel(defaultSchema, table)
	existing, exists := c.channels[ch.topic]
	if exists {
		ch = existing
	} else {
		c.channels[ch.topic] = ch
	}
	id := ch.add(handler)
	c.mu.Unlock()

	if exists {
		if err := ch.waitJoined(ctx); err != nil {
			c.release(ch, id, false)

			return nil, err
		}
	} else {
		err := c.join(ctx, ch)
		if err != nil {
			// Drop the channel before waking waiters so the next Subscribe joins afresh.
			c.mu.Lock()
			if c.channels[ch.topic] == ch {
				delete(c.channels, ch.topic)
			}
			c.mu.Unlock()
		}
		ch.settle(err)
		if err != nil {
			c.release(ch, id, false)

			return nil, err
		}
		c.logger.Info("Joined realtime channel", slog.String("topic", ch.topic))
	}

	sub := &subscription{}
	sub.release = func() { c.release(ch, id, true) }

	return sub, nil
}

// Close leaves every channel and closes the socket.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	c.lifeCancel()
	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "client closing")
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// PushAccessToken sends a new access token to every joined channel.
func (c *Client) PushAccessToken(ctx context.Context, token string) {
	payload, _ := json.Marshal(map[string]string{"access_token": token})

	for _, ch := range c.snapshotChannels() {
		err := c.write(ctx, message{
			Topic:   ch.topic,
			Event:   eventToken,
			Payload: payload,
			Ref:     c.nextRef(),
			JoinRef: ch.currentJoinRef(),
		})
		if err != nil && !errors.Is(err, errNotConnected) {
			c.logger.Warn("Failed to push access token", slog.String("topic", ch.topic), slog.Any("error", err))
		}
	}
}

func (c *Client) nextRef() string {
	return strconv.FormatUint(c.ref.Add(1), 10)
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid backend URL %q", c.baseURL)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	case "ws", "wss":
	default:
		return "", errors.Errorf("unsupported backend URL %q", c.baseURL)
	}

	u.Path = strings.TrimRight(u.Path, "/") + socketPath
	u.RawQuery = url.Values{"apikey": {c.apiKey}, "vsn": {protocolVersion}}.Encode()

	return u.String(), nil
}

func (c *Client) ensureConnected(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	closed, connected := c.closed, c.conn != nil
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if connected {
		return nil
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	conn, _, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to dial realtime socket")
	}
	conn.SetReadLimit(readLimit)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		_ = conn.CloseNow()

		return ErrClosed
	}
	connCtx, cancel := context.WithCancel(c.lifeCtx)
	done := make(chan struct{})
	c.conn = conn
	c.connDone = done
	c.wg.Add(2)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.heartbeatLoop(connCtx, conn)
	}()
	go func() {
		defer c.wg.Done()
		err := c.readLoop(connCtx, conn)
		cancel()
		close(done)
		c.handleDisconnect(conn, err)
	}()

	c.logger.Debug("Realtime socket connected")

	return nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("Dropping malformed realtime frame", slog.Any("error", err))

			continue
		}
		c.route(msg)
	}
}

func (c *Client) heartbeatLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := writeMessage(ctx, conn, message{
				Topic:   topicPhoenix,
				Event:   eventHeartbeat,
				Payload: json.RawMessage(`{}`),
				Ref:     c.nextRef(),
			})
			if err != nil {
				if ctx.Err() == nil {
					c.logger.Warn("Realtime heartbeat failed", slog.Any("error", err))
				}
				_ = conn.CloseNow()

				return
			}
		}
	}
}

func (c *Client) route(msg message) {
	switch msg.Event {
	case eventReply:
		c.mu.Lock()
		waiter, ok := c.pending[msg.Ref]
		delete(c.pending, msg.Ref)
		c.mu.Unlock()
		if !ok {
			return
		}

		var reply replyPayload
		if err := json.Unmarshal(msg.Payload, &reply); err != nil {
			reply = replyPayload{Status: "error", Response: msg.Payload}
		}
		waiter <- reply

	case eventChanges:
		ch := c.channel(msg.Topic)
		if ch == nil {
			return
		}

		var payload changesPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.logger.Debug("Dropping malformed change payload", slog.String("topic", msg.Topic), slog.Any("error", err))

			return
		}
		if !payload.Data.Type.IsValid() {
			return
		}
		ch.dispatch(payload.Data.toEvent())

	case eventError:
		ch := c.channel(msg.Topic)
		if ch == nil || (msg.JoinRef != "" && msg.JoinRef != ch.currentJoinRef()) {
			return
		}
		c.logger.Warn("Realtime channel errored, rejoining", slog.String("topic", msg.Topic))
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			if err := c.join(c.lifeCtx, ch); err != nil {
				c.logger.Warn("Realtime rejoin failed", slog.String("topic", ch.topic), slog.Any("error", err))
			}
		}()

	case eventSystem:
		var status struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(msg.Payload, &status)
		if status.Status == "error" {
			c.logger.Warn("Realtime system error", slog.String("topic", msg.Topic), slog.String("message", status.Message))
		}

	case eventClose:
		c.logger.Debug("Realtime channel closed", slog.String("topic", msg.Topic))
	}
}

func (c *Client) handleDisconnect(conn *websocket.Conn, err error) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	closed := c.closed
	hasChannels := len(c.channels) > 0
	c.mu.Unlock()

	if closed {
		return
	}

	c.logger.Warn("Realtime socket disconnected", slog.Any("error", err))
	if !hasChannels {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.reconnect()
	}()
}

// reconnect redials with capped exponential backoff and rejoins every channel.
func (c *Client) reconnect() {
	started := time.Now()
	backoff := retry.WithMaxRetries(c.maxAttempts,
		retry.WithCappedDuration(maxBackoff,
			retry.WithJitterPercent(10, retry.NewExponential(c.baseDelay))))

	err := retry.Do(c.lifeCtx, backoff, func(ctx context.Context) error {
		if err := c.ensureConnected(ctx); err != nil {
			if errors.Is(err, ErrClosed) {
				return err
			}

			return retry.RetryableError(err)
		}

		for _, ch := range c.snapshotChannels() {
			if err := c.join(ctx, ch); err != nil {
				return retry.RetryableError(err)
			}
		}

		return nil
	})
	if err != nil {
		if c.lifeCtx.Err() == nil && !errors.Is(err, ErrClosed) {
			c.logger.Error("Realtime reconnect gave up", slog.Any("error", err))
		}

		return
	}

	c.logger.Info("Realtime socket reconnected", slog.String("downtime", util.FormatDuration(time.Since(started))))
}

func (c *Client) join(ctx context.Context, ch *channel) error {
	payload, err := json.Marshal(newJoinPayload(ch.schema, ch.table, c.tokens.AccessToken()))
	if err != nil {
		return errors.WithStack(err)
	}

	ref := c.nextRef()
	ch.setJoinRef(ref)

	reply, err := c.request(ctx, message{
		Topic:   ch.topic,
		Event:   eventJoin,
		Payload: payload,
		Ref:     ref,
		JoinRef: ref,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to join %s", ch.topic)
	}
	if reply.Status != replyOK {
		return errors.Errorf("join %s refused: %s", ch.topic, reply.reason())
	}

	return nil
}

// release drops a handler; the last one leaves the channel.
func (c *Client) release(ch *channel, id uint64, leave bool) {
	c.mu.Lock()
	remaining := ch.remove(id)
	if remaining == 0 && c.channels[ch.topic] == ch {
		delete(c.channels, ch.topic)
	}
	c.mu.Unlock()

	if remaining > 0 || !leave {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
	defer cancel()

	err := c.write(ctx, message{
		Topic:   ch.topic,
		Event:   eventLeave,
		Payload: json.RawMessage(`{}`),
		Ref:     c.nextRef(),
		JoinRef: ch.currentJoinRef(),
	})
	if err != nil && !errors.Is(err, errNotConnected) {
		c.logger.Warn("Failed to leave realtime channel", slog.String("topic", ch.topic), slog.Any("error", err))

		return
	}
	c.logger.Info("Left realtime channel", slog.String("topic", ch.topic))
}

func (c *Client) request(ctx context.Context, msg message) (replyPayload, error) {
	waiter := make(chan replyPayload, 1)

	c.mu.Lock()
	done := c.connDone
	c.pending[msg.Ref] = waiter
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, msg.Ref)
		c.mu.Unlock()
	}()

	if err := c.write(ctx, msg); err != nil {
		return replyPayload{}, err
	}

	timer := time.NewTimer(joinTimeout)
	defer timer.Stop()

	select {
	case reply := <-waiter:
		return reply, nil
	case <-done:
		return replyPayload{}, errConnLost
	case <-timer.C:
		return replyPayload{}, errors.Errorf("no reply to %s within %s", msg.Event, joinTimeout)
	case <-ctx.Done():
		return replyPayload{}, errors.WithStack(ctx.Err())
	}
}

func (c *Client) write(ctx context.Context, msg message) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return errNotConnected
	}

	return writeMessage(ctx, conn, msg)
}

func writeMessage(ctx context.Context, conn *websocket.Conn, msg message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(conn.Write(ctx, websocket.MessageText, data))
}

func (c *Client) channel(topic string) *channel {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.channels[topic]
}

func (c *Client) snapshotChannels() []*channel {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*channel, 0, len(c.channels))
	for _, ch := range c.channels {
		out = append(out, ch)
	}

	return out
}

// subscription releases its handler once.
type subscription struct {
	once    sync.Once
	release func()
}

func (s *subscription) Unsubscribe() error {
	s.once.Do(s.release)

	return nil
}
