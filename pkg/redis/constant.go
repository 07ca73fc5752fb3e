package redis

import "time"

// DefaultConnectTimeout bounds the initial connection probe.
const DefaultConnectTimeout = 5 * time.Second
