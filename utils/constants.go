// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "session:"

// ScheduleCachePrefix is the prefix used for warmed doctor schedule keys.
const ScheduleCachePrefix = "schedule:"

// SuggestionCachePrefix is the prefix used for city suggestion keys.
const SuggestionCachePrefix = "suggest:city:"

// ScheduleCacheTTL is the time-to-live for warmed schedule entries.
const ScheduleCacheTTL = 15 * time.Minute

// SuggestionCacheTTL is the time-to-live for cached city suggestions.
const SuggestionCacheTTL = 24 * time.Hour
