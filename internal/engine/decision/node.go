package decision

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/adapters/depfile"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/fs"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rebuild/internal/core/ports"
)

const (
	// EngineNodeID is the unique identifier for the decision engine Graft node.
	EngineNodeID graft.ID = "engine.decision"
	// GuardNodeID is the unique identifier for the serialized decision Graft node.
	GuardNodeID graft.ID = "engine.decision.guard"
)

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        EngineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fingerprint.NodeID,
			fs.OracleNodeID,
			depfile.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}

			oracle, err := graft.Dep[ports.TimestampOracle](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.DependencyExtractor](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, oracle, extractor, log), nil
		},
	})

	graft.Register(graft.Node[*Guard]{
		ID:        GuardNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EngineNodeID},
		Run: func(ctx context.Context) (*Guard, error) {
			engine, err := graft.Dep[*Engine](ctx)
			if err != nil {
				return nil, err
			}
			return NewGuard(engine), nil
		},
	})
}
