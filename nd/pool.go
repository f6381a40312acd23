package nd

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxRank  = 64 // max pooled index length
	poolInitRank = 8
)

// index buffer pool for enumeration and generator calls
var indexPool = sync.Pool{
	New: func() any {
		buf := make([]int, 0, poolInitRank)
		return &buf
	},
}

func getIndex(rank int) *[]int {
	buf := indexPool.Get().(*[]int)
	if cap(*buf) < rank {
		*buf = make([]int, rank)
	} else {
		*buf = (*buf)[:rank]
		clear(*buf)
	}
	return buf
}

func putIndex(buf *[]int) {
	if buf == nil || cap(*buf) > poolMaxRank {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	indexPool.Put(buf)
}
