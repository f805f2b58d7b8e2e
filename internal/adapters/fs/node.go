package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rebuild/internal/core/ports"
)

// OracleNodeID is the unique identifier for the timestamp oracle Graft node.
const OracleNodeID graft.ID = "adapter.fs.oracle"

func init() {
	graft.Register(graft.Node[ports.TimestampOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TimestampOracle, error) {
			return NewOracle(), nil
		},
	})
}
