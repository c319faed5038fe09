package timeseries

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger replaces the logger used for debug output while series are
// populated. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
