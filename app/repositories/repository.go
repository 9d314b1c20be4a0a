package repositories

import (
	"errors"

	"techtrends/app/logger"
	"techtrends/app/metrics"
)

// ErrNotFound is returned when no post has the requested ID.
var ErrNotFound = errors.New("record not found")

// countConnection records one more acquired connection on conns and logs the
// new total.
func countConnection(conns *metrics.Counter) {
	total := conns.Inc()
	logger.Debugf("New database connection established. Total connections: %d", total)
}
