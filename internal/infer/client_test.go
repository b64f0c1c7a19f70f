package infer

// #region imports
import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/mkoppelaar/restaurant-dialog/internal/classify"
)

// #endregion

// #region fake-conn

// fakeConn stands in for a gRPC connection: it records the invoked method
// and writes a canned reply into the response message.
type fakeConn struct {
	method string
	reply  ClassifyResponse
	err    error
}

func (f *fakeConn) Invoke(_ context.Context, method string, args, reply any, _ ...grpc.CallOption) error {
	f.method = method
	if f.err != nil {
		return f.err
	}
	*reply.(*ClassifyResponse) = f.reply
	return nil
}

func (f *fakeConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("streaming not supported")
}

// #endregion

// #region tests

func TestClassifyReturnsPredictedAct(t *testing.T) {
	conn := &fakeConn{reply: ClassifyResponse{Act: "inform", Confidence: 0.93}}
	client := NewClientWithConn(conn)

	act, err := client.Classify(context.Background(), "im looking for thai food")

	require.NoError(t, err)
	assert.Equal(t, classify.ActInform, act)
	assert.Equal(t, classifyMethod, conn.method)
}

func TestClassifyWrapsRPCError(t *testing.T) {
	rpcErr := errors.New("connection refused")
	client := NewClientWithConn(&fakeConn{err: rpcErr})

	act, err := client.Classify(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, rpcErr)
	assert.Equal(t, classify.ActNone, act)
}

func TestJSONCodecRoundTrip(t *testing.T) {
	c := jsonCodec{}
	data, err := c.Marshal(&ClassifyRequest{Utterance: "cheap food in the west"})
	require.NoError(t, err)

	var req ClassifyRequest
	require.NoError(t, c.Unmarshal(data, &req))
	assert.Equal(t, "cheap food in the west", req.Utterance)
	assert.Equal(t, "json", c.Name())
}

// #endregion
