// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	// The upgrade hijacked the connection so the status is recorded by hand.
	v.StatusCode = http.StatusSwitchingProtocols

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return nil
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Chain returns the full chain along with the pending transactions.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveLedger(), http.StatusOK)
}

// Mine solves the puzzle for the next block and forges it with every pending
// transaction plus the reward for this node.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	block, err := h.State.MineNewBlock(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return errs.NewTrusted(fmt.Errorf("mining cancelled: %w", err), http.StatusServiceUnavailable)
		}
		return err
	}

	return web.Respond(ctx, w, toForged(block), http.StatusOK)
}

// SubmitTransaction adds a new transaction to the mempool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var ntx newTx
	if err := web.Decode(r, &ntx); err != nil {
		return errs.BadRequest(err)
	}

	tx := ntx.toTx()

	h.Log.Infow("add tran", "traceid", web.GetTraceID(ctx), "sender", tx.Sender, "recipient", tx.Recipient, "amount", tx.Amount)

	index, err := h.State.SubmitTransaction(tx)
	if err != nil {
		if errors.Is(err, state.ErrInvalidTransaction) {
			return errs.BadRequest(err)
		}
		return err
	}

	resp := submitted{
		Message: fmt.Sprintf("Transaction will be added to Block %d", index),
		Index:   index,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// RegisterNodes adds the specified addresses to the set of known peers.
func (h Handlers) RegisterNodes(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var rn registerNodes
	if err := web.Decode(r, &rn); err != nil {
		return errs.BadRequest(err)
	}

	peers := make([]peer.Peer, len(rn.Nodes))
	for i, address := range rn.Nodes {
		pr, err := peer.Parse(address)
		if err != nil {
			return errs.BadRequest(err)
		}
		peers[i] = pr
	}

	added := h.State.AddKnownPeers(peers)

	h.Log.Infow("register nodes", "traceid", web.GetTraceID(ctx), "requested", len(peers), "added", added)

	resp := registered{
		Message:    "New nodes have been added",
		TotalNodes: h.knownHosts(),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Nodes returns the set of known peers.
func (h Handlers) Nodes(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, nodes{Nodes: h.knownHosts()}, http.StatusOK)
}

// Resolve runs the consensus algorithm against the known peers.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced, err := h.State.Resolve(ctx)
	if err != nil {
		return err
	}

	resp := resolved{
		Status:  "authoritative",
		Message: "Our chain is authoritative",
		Chain:   h.State.RetrieveChain(),
	}
	if replaced {
		resp.Status = "replaced"
		resp.Message = "Our chain was replaced"
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// =============================================================================

func (h Handlers) knownHosts() []string {
	peers := h.State.RetrieveKnownPeers()

	hosts := make([]string, len(peers))
	for i, pr := range peers {
		hosts[i] = pr.Host
	}

	return hosts
}
