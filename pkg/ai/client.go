// pkg/ai/client.go

package ai

import (
	"context"

	"hoacuong/pkg/store"
)

// Client answers a free-text question about the current data. It never
// returns an error: failures come back as a fixed, localized message.
type Client interface {
	GenerateInsights(ctx context.Context, prompt string, snap store.Snapshot) string
}
