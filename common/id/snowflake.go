// Package id mints the int64 identifiers used for every Loomworks
// entity, from tenants down to individual audit rows.
package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init configures the process-wide Snowflake node. The API server and
// the audit worker run under distinct node IDs so the two processes
// cannot mint colliding IDs. Calls after the first are no-ops.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New returns the next identifier. IDs are 63-bit and time-ordered,
// so sorting by ID approximates creation order. Handlers serialize
// them as decimal strings to survive JSON number precision.
func New() int64 {
	return node.Generate().Int64()
}
