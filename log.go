package bptree

import "go.uber.org/zap"

// defaultLogger mirrors bluesky-social-indigo/sonar's pattern of falling
// back to a no-op logger when the caller doesn't wire one in. Tree emits
// Debug-level lines on root growth, on clear, and on each successful Add
// and Remove. Get, TryGet and Set never log; root creation and splits
// below the root are not logged.
func defaultLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
