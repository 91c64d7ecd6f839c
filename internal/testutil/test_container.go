//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMu    sync.RWMutex
	sharedMongo *Container
	sharedRedis *Container
)

// SetupTestMain starts one MongoDB and one Redis container for every test in a
// package and tears them down after m.Run.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m))
//	}
func SetupTestMain(ctx context.Context, m *testing.M) int {
	mongoContainer, err := SetupMongoDB(ctx)
	if err != nil {
		panic(err)
	}
	redisContainer, err := SetupRedis(ctx)
	if err != nil {
		_ = mongoContainer.Cleanup(ctx)
		panic(err)
	}

	sharedMu.Lock()
	sharedMongo, sharedRedis = mongoContainer, redisContainer
	sharedMu.Unlock()

	code := m.Run()

	for _, c := range []*Container{mongoContainer, redisContainer} {
		if err := c.Cleanup(ctx); err != nil {
			_, _ = os.Stderr.WriteString("Warning: " + err.Error() + "\n")
		}
	}
	return code
}

// MongoURI returns the connection string of the shared MongoDB container.
func MongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - use SetupTestMain")
	}
	return sharedMongo.URI
}

// RedisAddr returns the host:port of the shared Redis container.
func RedisAddr() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if sharedRedis == nil {
		panic("shared Redis container not initialized - use SetupTestMain")
	}
	return sharedRedis.URI
}

// SanitizeName turns a test name into a database name or key prefix unique to this run.
func SanitizeName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
