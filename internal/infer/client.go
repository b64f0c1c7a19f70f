// Package infer talks to the Python dialog-act inference service over gRPC.
package infer

// #region imports
import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
)

// #endregion

// #region codec

// jsonCodec lets the gRPC channel carry plain JSON frames. The Python
// service registers the matching codec on its side, so no generated stubs
// are needed on either end.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// #endregion

// #region messages

// ClassifyRequest is the wire request for one utterance.
type ClassifyRequest struct {
	Utterance string `json:"utterance"`
}

// ClassifyResponse is the wire response: the predicted dialog act and the
// model's confidence in it.
type ClassifyResponse struct {
	Act        string  `json:"act"`
	Confidence float32 `json:"confidence"`
}

// #endregion

// #region client

const classifyMethod = "/dialogact.Classifier/Classify"

// Client wraps the gRPC connection to the classifier service. It satisfies
// the classify.Classifier interface.
type Client struct {
	conn *grpc.ClientConn
	cc   grpc.ClientConnInterface
}

// NewClient connects to the classifier gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, cc: conn}, nil
}

// NewClientWithConn creates a Client over an injected connection.
// Used for testing without a real gRPC server.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Classify sends the utterance to the inference service and returns the
// predicted dialog act.
func (c *Client) Classify(ctx context.Context, utterance string) (classify.Act, error) {
	req := &ClassifyRequest{Utterance: utterance}
	var resp ClassifyResponse
	err := c.cc.Invoke(ctx, classifyMethod, req, &resp, grpc.CallContentSubtype("json"))
	if err != nil {
		return classify.ActNone, fmt.Errorf("classify rpc: %w", err)
	}
	return classify.Act(resp.Act), nil
}

// #endregion
