package uid

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-sortable int64 identifiers.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator whose node number is derived from the
// hostname, so replicas on different hosts produce disjoint ID spaces.
func NewSnowflake() (*Snowflake, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	h := fnv.New32a()
	h.Write([]byte(host))

	node, err := snowflake.NewNode(int64(h.Sum32() % 1024))
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
