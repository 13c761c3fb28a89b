package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"todo/config"
	"todo/internal/domain/entity"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

// fakePhoenix is a minimal Phoenix channel server.
type fakePhoenix struct {
	t      *testing.T
	refuse bool
	hold   chan struct{} // when set, join replies wait for it

	mu     sync.Mutex
	joins  []message
	leaves []message
	query  []string
	conns  chan *websocket.Conn
}

func newFakePhoenix(t *testing.T) (*fakePhoenix, *httptest.Server) {
	f := &fakePhoenix{t: t, conns: make(chan *websocket.Conn, 8)}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	return f, srv
}

func (f *fakePhoenix) serve(w http.ResponseWriter, r *http.Request) {
	assert.Equal(f.t, "/realtime/v1/websocket", r.URL.Path)
	f.mu.Lock()
	f.query = append(f.query, r.URL.RawQuery)
	f.mu.Unlock()

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	f.conns <- conn

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg message
		if json.Unmarshal(data, &msg) != nil {
			continue
		}

		switch msg.Event {
		case eventJoin:
			f.mu.Lock()
			f.joins = append(f.joins, msg)
			refuse, hold := f.refuse, f.hold
			f.mu.Unlock()
			if hold != nil {
				<-hold
			}

			status := `{"status":"ok","response":{"postgres_changes":[{"id":1,"event":"*","schema":"public","table":"todos"}]}}`
			if refuse {
				status = `{"status":"error","response":{"reason":"unauthorized"}}`
			}
			f.send(ctx, conn, message{Topic: msg.Topic, Event: eventReply, Payload: json.RawMessage(status), Ref: msg.Ref, JoinRef: msg.JoinRef})
		case eventLeave:
			f.mu.Lock()
			f.leaves = append(f.leaves, msg)
			f.mu.Unlock()
		case eventHeartbeat:
			f.send(ctx, conn, message{Topic: topicPhoenix, Event: eventReply, Payload: json.RawMessage(`{"status":"ok","response":{}}`), Ref: msg.Ref})
		}
	}
}

func (f *fakePhoenix) send(ctx context.Context, conn *websocket.Conn, msg message) {
	data, _ := json.Marshal(msg)
	_ = conn.Write(ctx, websocket.MessageText, data)
}

func (f *fakePhoenix) counts() (joins, leaves int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.joins), len(f.leaves)
}

func (f *fakePhoenix) nextConn(t *testing.T) *websocket.Conn {
	t.Helper()

	select {
	case conn := <-f.conns:
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("no realtime connection")

		return nil
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()

	cfg := &config.Config{
		Backend: &config.BackendConfig{URL: url, PublishableKey: "anon-key"},
		Realtime: &config.RealtimeConfig{
			Enabled:              true,
			HeartbeatInterval:    time.Hour,
			ReconnectMaxAttempts: 5,
			ReconnectBaseDelay:   10 * time.Millisecond,
		},
	}
	client := NewClient(cfg, staticToken("user-jwt"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	})

	return client
}

func TestClient_SubscribeReceivesChanges(t *testing.T) {
	fake, srv := newFakePhoenix(t)
	client := newTestClient(t, srv.URL)

	events := make(chan entity.ChangeEvent, 4)
	sub, err := client.Subscribe(context.Background(), "todos", func(event entity.ChangeEvent) {
		events <- event
	})
	require.NoError(t, err)
	serverConn := fake.nextConn(t)

	fake.mu.Lock()
	require.Len(t, fake.joins, 1)
	join := fake.joins[0]
	query := fake.query[0]
	fake.mu.Unlock()

	assert.Equal(t, "realtime:public:todos", join.Topic)
	assert.Equal(t, join.Ref, join.JoinRef)
	assert.Contains(t, query, "apikey=anon-key")
	assert.Contains(t, query, "vsn=1.0.0")

	var payload joinPayload
	require.NoError(t, json.Unmarshal(join.Payload, &payload))
	assert.Equal(t, "user-jwt", payload.AccessToken)
	require.Len(t, payload.Config.PostgresChanges, 1)
	assert.Equal(t, changeFilter{Event: "*", Schema: "public", Table: "todos"}, payload.Config.PostgresChanges[0])

	fake.send(context.Background(), serverConn, message{
		Topic: "realtime:public:todos",
		Event: eventChanges,
		Payload: json.RawMessage(`{"ids":[1],"data":{"type":"DELETE","schema":"public","table":"todos",
			"commit_timestamp":"2026-10-14T09:30:00.123Z","record":{},"old_record":{"id":"7d7c36a4-6f5e-4a1b-9c61-2a9a3d0d5e11"}}}`),
	})

	select {
	case event := <-events:
		assert.Equal(t, entity.ChangeDelete, event.Type)
		assert.Equal(t, "todos", event.Table)
		assert.JSONEq(t, `{"id":"7d7c36a4-6f5e-4a1b-9c61-2a9a3d0d5e11"}`, string(event.OldRecord))
		assert.Equal(t, 2026, event.CommitTimestamp.Year())
	case <-time.After(2 * time.Second):
		t.Fatal("change event not delivered")
	}

	require.NoError(t, sub.Unsubscribe())
	require.NoError(t, sub.Unsubscribe())
	assert.Eventually(t, func() bool {
		_, leaves := fake.counts()

		return leaves == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClient_SharedChannelIsReferenceCounted(t *testing.T) {
	fake, srv := newFakePhoenix(t)
	client := newTestClient(t, srv.URL)

	first, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
	require.NoError(t, err)
	second, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
	require.NoError(t, err)

	joins, _ := fake.counts()
	assert.Equal(t, 1, joins)

	require.NoError(t, first.Unsubscribe())
	time.Sleep(50 * time.Millisecond)
	_, leaves := fake.counts()
	assert.Equal(t, 0, leaves)

	require.NoError(t, second.Unsubscribe())
	assert.Eventually(t, func() bool {
		_, leaves := fake.counts()

		return leaves == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClient_RefusedJoin(t *testing.T) {
	fake, srv := newFakePhoenix(t)
	fake.refuse = true
	client := newTestClient(t, srv.URL)

	sub, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})

	assert.Nil(t, sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
	assert.Nil(t, client.channel("realtime:public:todos"))
}

func TestClient_RefusedJoinFailsConcurrentSubscribers(t *testing.T) {
	fake, srv := newFakePhoenix(t)
	fake.refuse = true
	fake.hold = make(chan struct{})
	client := newTestClient(t, srv.URL)

	errs := make(chan error, 2)
	subscribe := func() {
		sub, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
		assert.Nil(t, sub)
		errs <- err
	}

	go subscribe()
	assert.Eventually(t, func() bool {
		joins, _ := fake.counts()

		return joins == 1
	}, 2*time.Second, 10*time.Millisecond)

	// The second subscriber shares the channel whose join is still pending.
	go subscribe()
	time.Sleep(20 * time.Millisecond)
	close(fake.hold)

	for range 2 {
		select {
		case err := <-errs:
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unauthorized")
		case <-time.After(2 * time.Second):
			t.Fatal("subscriber did not learn about the refused join")
		}
	}
	assert.Nil(t, client.channel("realtime:public:todos"))

	// A later subscriber joins afresh once the backend accepts.
	fake.mu.Lock()
	fake.refuse = false
	fake.mu.Unlock()

	sub, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
	require.NoError(t, err)
	assert.NotNil(t, client.channel("realtime:public:todos"))
	require.NoError(t, sub.Unsubscribe())
}

func TestClient_ReconnectRejoins(t *testing.T) {
	fake, srv := newFakePhoenix(t)
	client := newTestClient(t, srv.URL)

	_, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
	require.NoError(t, err)

	serverConn := fake.nextConn(t)
	require.NoError(t, serverConn.Close(websocket.StatusGoingAway, "restart"))

	assert.Eventually(t, func() bool {
		joins, _ := fake.counts()

		return joins == 2
	}, 3*time.Second, 10*time.Millisecond)
}

func TestClient_SubscribeErrors(t *testing.T) {
	t.Run("placeholder backend URL", func(t *testing.T) {
		client := newTestClient(t, "your-supabase-url-here")

		_, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})

		assert.Error(t, err)
	})

	t.Run("closed client", func(t *testing.T) {
		_, srv := newFakePhoenix(t)
		client := newTestClient(t, srv.URL)
		require.NoError(t, client.Close(context.Background()))

		_, err := client.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})

		assert.ErrorIs(t, err, ErrClosed)
	})
}

func TestParseCommitTimestamp(t *testing.T) {
	assert.Equal(t, 2026, parseCommitTimestamp("2026-10-14T09:30:00Z").Year())
	assert.Equal(t, 2026, parseCommitTimestamp("2026-10-14T09:30:00.123456").Year())
	assert.True(t, parseCommitTimestamp("yesterday").IsZero())
}

func TestNew_DisabledUsesNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	svc := New(Params{
		Lc: lc,
		Config: &config.Config{
			Backend:  &config.BackendConfig{URL: "http://localhost"},
			Realtime: &config.RealtimeConfig{Enabled: false},
		},
		Tokens: staticToken("t"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	sub, err := svc.Subscribe(context.Background(), "todos", func(entity.ChangeEvent) {})
	require.NoError(t, err)
	assert.NoError(t, sub.Unsubscribe())
	lc.RequireStart().RequireStop()
}
