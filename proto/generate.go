// Package proto holds the gRPC contract for the local inference
// sidecar. The generated stubs live alongside llm.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
