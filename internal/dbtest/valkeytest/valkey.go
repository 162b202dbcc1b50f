package valkeytest

import (
	"context"
	"net"

	"github.com/docker/go-connections/nat"
	"github.com/valkey-io/valkey-go"

	valkeycontainer "github.com/testcontainers/testcontainers-go/modules/valkey"
	slogctx "github.com/veqryn/slog-context"
)

const (
	Image = "valkey/valkey:8-alpine"
	Host  = "localhost"
)

// Start runs a ValKey container and returns a connected client, the mapped
// port, and a termination function that also closes the client.
func Start(ctx context.Context) (valkey.Client, nat.Port, func(ctx context.Context)) {
	container, err := valkeycontainer.Run(ctx, Image)
	if err != nil {
		slogctx.Error(ctx, "Failed to start ValKey container", "error", err)
		panic(err)
	}

	port, err := container.MappedPort(ctx, nat.Port("6379"))
	if err != nil {
		slogctx.Error(ctx, "Failed to map a port for the ValKey container", "error", err)
		panic(err)
	}

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{Address(port)},
	})
	if err != nil {
		slogctx.Error(ctx, "Failed to initialise a ValKey client", "error", err)
		panic(err)
	}

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		slogctx.Error(ctx, "ValKey container is not answering", "error", err)
		panic(err)
	}

	terminate := func(ctx context.Context) {
		client.Close()
		if err := container.Terminate(ctx); err != nil {
			slogctx.Error(ctx, "Failed to terminate ValKey container", "error", err)
			panic(err)
		}
	}

	return client, port, terminate
}

// Address returns host:port of the container for clients configured from files.
func Address(port nat.Port) string {
	return net.JoinHostPort(Host, port.Port())
}

// Keys lists the keys stored under prefix.
func Keys(ctx context.Context, client valkey.Client, prefix string) ([]string, error) {
	return client.Do(ctx, client.B().Keys().Pattern(prefix+":*").Build()).AsStrSlice()
}
