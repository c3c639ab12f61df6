package kernel

import "go.uber.org/zap"

// logger wraps *zap.Logger so the kernel has no hard dependency on a
// configured logger at construction: New installs newNopLogger (backed by
// zap.NewNop()), so a Kernel built without an explicit WithLogger option
// runs without emitting any trace. The zero value of logger holds a nil
// *zap.Logger and is not usable.
type logger struct {
	z *zap.Logger
}

func newNopLogger() logger {
	return logger{z: zap.NewNop()}
}

func (l logger) tick(tick uint64) {
	l.z.Debug("tick", zap.Uint64("tick", tick))
}

func (l logger) dispatch(pid int, fromIdle bool) {
	l.z.Debug("dispatch", zap.Int("pid", pid), zap.Bool("from_idle", fromIdle))
}

func (l logger) wakeup(pid int, tick uint64) {
	l.z.Debug("wakeup", zap.Int("pid", pid), zap.Uint64("tick", tick))
}

func (l logger) idle(tick uint64) {
	l.z.Debug("idle", zap.Uint64("tick", tick))
}

func (l logger) programmerError(msg string, fields ...zap.Field) {
	l.z.Error(msg, fields...)
}
