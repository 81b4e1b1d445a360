package media

import (
	"context"
	"log"
)

// ObjectStore is the slice of the bucket the cleaner needs.
type ObjectStore interface {
	Remove(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, bool)
}

// Failure records one object that could not be deleted.
type Failure struct {
	URL string
	Err error
}

// Result partitions a cleanup run. The HTTP contract stays best-effort; the
// partition feeds logs and metrics.
type Result struct {
	Deleted []string
	Skipped []string
	Failed  []Failure
}

func (r Result) AllDeleted() bool {
	return len(r.Skipped) == 0 && len(r.Failed) == 0
}

type Cleaner struct {
	store ObjectStore
}

func NewCleaner(store ObjectStore) *Cleaner {
	return &Cleaner{store: store}
}

// DeleteAll removes every object behind the given public URLs. Each deletion
// is attempted independently; a failure is logged and counted but never
// surfaces to the caller, since cleanup most often runs as compensation after
// another failure and must not add a failure path of its own.
func (c *Cleaner) DeleteAll(ctx context.Context, mediaURLs []string) Result {
	var res Result
	if len(mediaURLs) == 0 {
		return res
	}

	log.Printf("deleting %d media objects", len(mediaURLs))
	for _, u := range mediaURLs {
		key, ok := c.store.KeyFromURL(u)
		if !ok {
			log.Printf("skipping malformed media url: %s", u)
			res.Skipped = append(res.Skipped, u)
			cleanupSkipped.Inc()
			continue
		}
		if err := c.store.Remove(ctx, key); err != nil {
			log.Printf("failed to delete %s: %v", key, err)
			res.Failed = append(res.Failed, Failure{URL: u, Err: err})
			cleanupFailed.Inc()
			continue
		}
		res.Deleted = append(res.Deleted, key)
		cleanupDeleted.Inc()
	}
	return res
}
