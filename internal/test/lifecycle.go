package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects the hooks a constructor registers so a
// test can fire them by hand instead of booting a container.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without running it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a component requests a
// container shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown performs a non-blocking send so repeated calls never hang.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
