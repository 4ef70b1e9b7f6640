package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Node describes the running server process.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

// Uptime is measured against the first GetNodeInfo call of the process.
func (n *Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}

// Version and CommitHash are set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     Node
	currentOnce sync.Once
)

func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		current = Node{
			ID:        uuid.NewString(),
			Hostname:  hostname(),
			StartedAt: time.Now(),
		}
	})

	info := current
	info.Version = Version
	info.CommitHash = CommitHash
	return &info
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
