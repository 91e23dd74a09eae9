package state

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

const baseURL = "http://%s/v1"

// NetRequestPeerChain asks the peer for its full chain. The request is bound
// by the configured peer timeout.
func (s *State) NetRequestPeerChain(ctx context.Context, pr peer.Peer) ([]database.Block, error) {
	s.event("state: NetRequestPeerChain: started: %s", pr)
	defer s.event("state: NetRequestPeerChain: completed: %s", pr)

	ctx, cancel := context.WithTimeout(ctx, s.peerTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/chain", fmt.Sprintf(baseURL, pr.Host))

	var data database.ChainData
	if err := send(ctx, s.client, http.MethodGet, url, nil, &data, s.maxPeerResp); err != nil {
		return nil, err
	}

	s.event("state: NetRequestPeerChain: peer-node[%s]: length[%d]", pr, len(data.Chain))

	return data.Chain, nil
}

// =============================================================================

// send is a helper function to send an HTTP request to a node. No more than
// maxRecv bytes of the response are read.
func send(ctx context.Context, client *http.Client, method string, url string, dataSend any, dataRecv any, maxRecv int64) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if dataSend != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	recv := io.LimitReader(resp.Body, maxRecv)

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(recv)
		if err != nil {
			return err
		}
		return fmt.Errorf("status %d: %w", resp.StatusCode, errors.New(string(msg)))
	}

	if dataRecv != nil {
		if err := json.NewDecoder(recv).Decode(dataRecv); err != nil {
			return fmt.Errorf("decoding response, limit %d bytes: %w", maxRecv, err)
		}
	}

	return nil
}
