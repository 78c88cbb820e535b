package image

import "sync"

// Pool is a thread-safe pool for reusing decoded pixel planes.
//
// Pool groups planes by their dimensions so a host filtering a stream of
// same-sized frames decodes into the same memory each time. Only the most
// recently returned size is retained: putting a plane of a new size drops
// every other bucket, so the pool never holds more than maxSize planes.
//
// A nil *Pool is valid: Get allocates and Put discards.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][][]Pixel
	maxSize int // max planes per bucket
}

// poolKey identifies a bucket of identically sized planes.
type poolKey struct {
	width  int
	height int
}

// NewPool creates a new plane pool with the given maximum planes per bucket.
// A maxPerBucket below 1 is treated as 1.
func NewPool(maxPerBucket int) *Pool {
	if maxPerBucket < 1 {
		maxPerBucket = 1
	}
	return &Pool{
		buckets: make(map[poolKey][][]Pixel),
		maxSize: maxPerBucket,
	}
}

// Get retrieves a zeroed plane of width*height pixels from the pool or
// allocates one. It returns nil for non-positive or overflowing dimensions.
func (p *Pool) Get(width, height int) []Pixel {
	n, err := expectedLength(width, height, 1)
	if err != nil {
		return nil
	}
	if p == nil {
		return make([]Pixel, n)
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		plane := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return plane
	}
	p.mu.Unlock()

	return make([]Pixel, n)
}

// Put returns a plane obtained from Get with the same dimensions. The plane
// is cleared before being stored. Planes of the wrong length, and planes
// beyond the bucket capacity, are discarded.
func (p *Pool) Put(plane []Pixel, width, height int) {
	if p == nil {
		return
	}
	n, err := expectedLength(width, height, 1)
	if err != nil || len(plane) != n {
		return
	}
	clear(plane)

	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	for k := range p.buckets {
		if k != key {
			delete(p.buckets, k)
		}
	}
	bucket := p.buckets[key]
	if len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, plane)
}

// Len returns the number of planes currently retained.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
