// File: server/engine_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server_test

import (
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-dispatch/api"
	"github.com/momentics/hioload-dispatch/server"
)

func tcpListener(t *testing.T) *net.TCPListener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln.(*net.TCPListener)
}

// startEngine runs the engine in the background and returns the channel Run
// will deliver its result on. Workers deliberately outlive the test process;
// nothing to clean up.
func startEngine(t *testing.T, e *server.Engine) <-chan error {
	t.Helper()
	ch := make(chan error, 1)
	go func() { ch <- e.Run() }()
	return ch
}

func dialAndClose(t *testing.T, addr net.Addr) {
	t.Helper()
	conn, err := net.Dial("tcp", addr.String())
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestFiftyConnectionsAcrossTwoListeners(t *testing.T) {
	ln1 := tcpListener(t)
	ln2 := tcpListener(t)

	var opens, closes atomic.Int32
	factory := api.FactoryFunc(func(api.Sender) api.Handler {
		return api.HandlerFuncs{
			Open:  func(api.Handshake) { opens.Add(1) },
			Close: func() { closes.Add(1) },
		}
	})

	e, err := server.NewEngine([]*net.TCPListener{ln1, ln2}, nil, factory)
	require.NoError(t, err)
	runCh := startEngine(t, e)

	addrs := e.TCPAddrs()
	require.Len(t, addrs, 2)
	for i := 0; i < 50; i++ {
		dialAndClose(t, addrs[i%2])
	}

	require.Eventually(t, func() bool {
		return opens.Load() == 50 && closes.Load() == 50
	}, 5*time.Second, 10*time.Millisecond)

	select {
	case err := <-runCh:
		t.Fatalf("Run returned unexpectedly: %v", err)
	default:
	}
}

func TestHandshakeMatchesObservedAddresses(t *testing.T) {
	ln := tcpListener(t)

	shakes := make(chan api.Handshake, 1)
	factory := api.FactoryFunc(func(api.Sender) api.Handler {
		return api.OpenFunc(func(hs api.Handshake) { shakes <- hs })
	})

	e, err := server.NewEngine([]*net.TCPListener{ln}, nil, factory)
	require.NoError(t, err)
	startEngine(t, e)

	conn, err := net.Dial("tcp", e.TCPAddrs()[0].String())
	require.NoError(t, err)
	defer conn.Close()

	select {
	case hs := <-shakes:
		require.Equal(t, api.Stream, hs.Transport())
		require.Equal(t, conn.LocalAddr().String(), hs.PeerAddr().String())
		require.Equal(t, e.TCPAddrs()[0].String(), hs.LocalAddr().String())
	case <-time.After(5 * time.Second):
		t.Fatal("handler never observed the connection")
	}
}

func TestHandlersOverlapButFactoryIsSerialized(t *testing.T) {
	ln1 := tcpListener(t)
	ln2 := tcpListener(t)

	var inFactory atomic.Int32
	var factoryOverlapped atomic.Bool
	var opened atomic.Int32
	var openTimedOut atomic.Bool
	barrier := make(chan struct{})
	var done sync.WaitGroup
	done.Add(2)

	factory := api.FactoryFunc(func(api.Sender) api.Handler {
		if inFactory.Add(1) > 1 {
			factoryOverlapped.Store(true)
		}
		time.Sleep(5 * time.Millisecond)
		inFactory.Add(-1)
		return api.HandlerFuncs{
			Open: func(api.Handshake) {
				if opened.Add(1) == 2 {
					close(barrier)
				}
				// Both handlers must sit in OnOpen at the same time for
				// either to get past the barrier.
				select {
				case <-barrier:
				case <-time.After(3 * time.Second):
					openTimedOut.Store(true)
				}
			},
			Close: func() { done.Done() },
		}
	})

	e, err := server.NewEngine([]*net.TCPListener{ln1, ln2}, nil, factory)
	require.NoError(t, err)
	startEngine(t, e)

	addrs := e.TCPAddrs()
	for _, addr := range addrs {
		go dialAndClose(t, addr)
	}

	waitCh := make(chan struct{})
	go func() { done.Wait(); close(waitCh) }()
	select {
	case <-waitCh:
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycles never completed")
	}

	require.False(t, factoryOverlapped.Load(), "ConnectionMade calls overlapped across workers")
	require.False(t, openTimedOut.Load(), "OnOpen calls were serialized across workers")
}

func TestDatagramLifecycleAndReply(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	var opens, closes atomic.Int32
	shakes := make(chan api.Handshake, 1)
	sendErrs := make(chan error, 1)
	factory := api.FactoryFunc(func(s api.Sender) api.Handler {
		return api.HandlerFuncs{
			Open: func(hs api.Handshake) {
				opens.Add(1)
				select {
				case shakes <- hs:
				default:
				}
			},
			Request: func() {
				_, err := api.SendString(s, "hello")
				select {
				case sendErrs <- err:
				default:
				}
			},
			Close: func() { closes.Add(1) },
		}
	})

	e, err := server.NewEngine(nil, []net.PacketConn{pc}, factory)
	require.NoError(t, err)
	startEngine(t, e)

	client, err := net.Dial("udp", e.UDPAddrs()[0].String())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Write([]byte("ping"))
	require.NoError(t, err)

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 64)
	n, err := client.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf[:n]))

	require.Equal(t, api.Datagram, (<-shakes).Transport())
	require.NoError(t, <-sendErrs)
	require.Eventually(t, func() bool {
		return opens.Load() == 1 && closes.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRunReturnsFirstWorkerError(t *testing.T) {
	ln := tcpListener(t)

	factory := api.FactoryFunc(func(api.Sender) api.Handler { return api.NopHandler{} })
	e, err := server.NewEngine([]*net.TCPListener{ln}, nil, factory)
	require.NoError(t, err)

	// Sabotage the listener so the worker's first accept fails.
	require.NoError(t, ln.Close())

	runCh := startEngine(t, e)
	select {
	case err := <-runCh:
		require.Error(t, err)
		require.Contains(t, err.Error(), "accept on")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not surface the worker error")
	}
}

func TestNewEngineRejectsEmptyListenerSet(t *testing.T) {
	factory := api.FactoryFunc(func(api.Sender) api.Handler { return api.NopHandler{} })
	_, err := server.NewEngine(nil, nil, factory)
	require.ErrorIs(t, err, api.ErrNoListeners)
}
