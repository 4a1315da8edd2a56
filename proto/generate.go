// Package proto holds the gRPC contract for the LLM completion sidecar.
// Generated code (*.pb.go) is produced by `make generate` and not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative completion.proto
