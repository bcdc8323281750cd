package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/procureguard/trimatch/proto"
)

// LocalProvider calls the on-cluster inference sidecar over gRPC.
type LocalProvider struct {
	name   string
	conn   *grpc.ClientConn
	client pb.CompletionServiceClient
	model  string
}

// NewLocalProvider connects to the sidecar at addr. The connection is
// lazy; failures surface on the first call.
func NewLocalProvider(name, addr, model string) (*LocalProvider, error) {
	if name == "" {
		name = "local"
	}
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to inference sidecar: %w", err)
	}
	return &LocalProvider{
		name:   name,
		conn:   conn,
		client: pb.NewCompletionServiceClient(conn),
		model:  model,
	}, nil
}

func (p *LocalProvider) Name() string   { return p.name }
func (p *LocalProvider) Terminal() bool { return false }

// Close closes the gRPC connection.
func (p *LocalProvider) Close() error {
	return p.conn.Close()
}

func (p *LocalProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	temperature := float32(req.Temperature)
	pbReq := &pb.CompletionRequest{
		Prompt:      req.Prompt,
		Model:       p.model,
		Temperature: &temperature,
		JsonMode:    req.JSONMode,
	}
	if req.MaxTokens > 0 {
		maxTokens := int32(req.MaxTokens)
		pbReq.MaxTokens = &maxTokens
	}

	stream, err := p.client.Complete(ctx, pbReq)
	if err != nil {
		return "", p.wrapGRPC(err)
	}

	var b strings.Builder
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", p.wrapGRPC(err)
		}
		if chunk.Error != "" {
			return "", &ProviderError{Provider: p.name, Class: FailTransport, Err: errors.New(chunk.Error)}
		}
		b.WriteString(chunk.Content)
		if chunk.IsFinal {
			break
		}
	}
	return b.String(), nil
}

func (p *LocalProvider) ReasoningVector(ctx context.Context, prompt string) ([]float64, error) {
	resp, err := p.client.Embed(ctx, &pb.EmbedRequest{Text: prompt, Model: p.model})
	if err != nil {
		return nil, p.wrapGRPC(err)
	}
	if len(resp.Values) == 0 {
		return nil, &ProviderError{Provider: p.name, Class: FailMalformed, Err: errors.New("empty embedding")}
	}
	return resp.Values, nil
}

// wrapGRPC maps gRPC status codes onto provider failure classes.
// ResourceExhausted maps to HTTP 429 so the router's retry policy
// applies to the sidecar too.
func (p *LocalProvider) wrapGRPC(err error) error {
	pe := &ProviderError{Provider: p.name, Class: FailTransport, Err: err}
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		pe.Class = FailTimeout
	case codes.ResourceExhausted:
		pe.Class = FailStatus
		pe.Status = http.StatusTooManyRequests
	case codes.InvalidArgument:
		pe.Class = FailMalformed
	}
	return pe
}
