package ports

import "time"

type MetricsPort interface {
	ObserveRequest(endpoint, outcome string)
	ObserveRefresh(elapsed time.Duration, videos int)
}
