package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ardanlabs/ledger/business/web/errs"
)

// requestTimeout bounds a single call to the node. Mining can take a while
// at higher difficulties.
const requestTimeout = 5 * time.Minute

// call sends a request to the node's v1 api and decodes the response.
func call(ctx context.Context, method string, path string, dataSend any, dataRecv any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/v1%s", strings.TrimSuffix(nodeURL, "/"), path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if dataSend != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var er errs.Response
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if len(er.Fields) > 0 {
			return fmt.Errorf("status %d: %s: %v", resp.StatusCode, er.Error, er.Fields)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, er.Error)
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// printJSON writes the value as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
