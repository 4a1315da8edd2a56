package llm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	pb "github.com/finovant/macaw/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/finovant/macaw/pkg/config"
)

// GRPCClient talks to the completion sidecar over plaintext gRPC.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.CompletionServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
	timeout     time.Duration
}

// NewGRPCClient connects to the completion service at cfg.GRPCAddr.
func NewGRPCClient(cfg *config.LLMConfig) (*GRPCClient, error) {
	conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	slog.Info("LLM client configured", "addr", cfg.GRPCAddr, "model", cfg.Model)

	return &GRPCClient{
		conn:        conn,
		client:      pb.NewCompletionServiceClient(conn),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.RequestTimeout,
	}, nil
}

// Close closes the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Complete issues a unary completion call bounded by the configured timeout.
func (c *GRPCClient) Complete(ctx context.Context, req *Request) (string, error) {
	opCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Complete(opCtx, c.toProto(req))
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	return resp.GetContent(), nil
}

// CompleteStream opens a server stream and forwards chunks until EOF,
// stream error, or context cancellation.
func (c *GRPCClient) CompleteStream(ctx context.Context, req *Request) (<-chan StreamChunk, <-chan error) {
	chunks := make(chan StreamChunk, 100)
	errs := make(chan error, 1)

	go func() {
		defer close(chunks)
		defer close(errs)

		stream, err := c.client.CompleteStream(ctx, c.toProto(req))
		if err != nil {
			errs <- fmt.Errorf("failed to open completion stream: %w", err)
			return
		}

		slog.Debug("Completion stream started", "plan_id", req.PlanID)

		for {
			chunk, err := stream.Recv()
			if err == io.EOF {
				slog.Debug("Completion stream finished", "plan_id", req.PlanID)
				return
			}
			if err != nil {
				errs <- fmt.Errorf("stream error: %w", err)
				return
			}

			switch x := chunk.ChunkType.(type) {
			case *pb.CompletionChunk_Delta:
				select {
				case chunks <- StreamChunk{Content: x.Delta.Content, IsFinal: x.Delta.IsFinal}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}

			case *pb.CompletionChunk_Error:
				select {
				case chunks <- StreamChunk{Error: x.Error.Message}:
				case <-ctx.Done():
					errs <- ctx.Err()
					return
				}
			}
		}
	}()

	return chunks, errs
}

func (c *GRPCClient) toProto(req *Request) *pb.CompletionRequest {
	pbMessages := make([]*pb.Message, len(req.Messages))
	for i, msg := range req.Messages {
		var role pb.Message_Role
		switch msg.Role {
		case RoleSystem:
			role = pb.Message_ROLE_SYSTEM
		case RoleAssistant:
			role = pb.Message_ROLE_ASSISTANT
		default:
			role = pb.Message_ROLE_USER
		}
		pbMessages[i] = &pb.Message{Role: role, Content: msg.Content}
	}

	return &pb.CompletionRequest{
		PlanId:      req.PlanID,
		Messages:    pbMessages,
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
}
