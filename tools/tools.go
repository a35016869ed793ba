//go:build tools

// Пакет tools фиксирует, чем генерируется proto/cart/v1. Генераторы ставятся вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.5.1
//
// и запускаются из корня модуля:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	  --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	  proto/cart/v1/cart_service.proto
package tools
