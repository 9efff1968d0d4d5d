package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"airstats/pkg/probe"
)

type ProbeServer struct {
	Name            string
	Version         string
	ListenAddress   string
	ReadinessChecks map[string]probe.ReadinessCheck
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	for name, check := range p.ReadinessChecks {
		probeServer = probeServer.WithReadinessCheck(name, check)
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
