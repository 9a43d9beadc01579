package random123

import (
	"fmt"
	"runtime"
	"sync"
)

// Fill32 fills dst with the stream of gen under key, beginning at the top
// word of the block whose counter is start. dst receives exactly the
// words an Engine positioned at (start, top) would return, so disjoint
// slices filled from consecutive counter ranges compose into one stream.
// The work is split across runtime.NumCPU() workers; every worker derives
// its own counter from start, so the output does not depend on the worker
// count.
func Fill32(gen Generator[uint32], key []uint32, start uint64, dst []uint32) error {
	return fillWords(gen, key, start, dst)
}

// Fill64 is Fill32 for 64-bit generators.
func Fill64(gen Generator[uint64], key []uint64, start uint64, dst []uint64) error {
	return fillWords(gen, key, start, dst)
}

func fillWords[W Word](gen Generator[W], key []W, start uint64, dst []W) error {
	if len(key) != gen.KeyLen() {
		return fmt.Errorf("%w: %s wants %d key words, got %d",
			ErrKeySize, gen.Name(), gen.KeyLen(), len(key))
	}
	if len(dst) == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(dst) {
		numWorkers = len(dst)
	}
	wordsPerWorker := len(dst) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			lo := workerID * wordsPerWorker
			hi := lo + wordsPerWorker
			if workerID == numWorkers-1 {
				hi = len(dst)
			}
			fillRange(gen, key, start, dst, lo, hi)
		}(w)
	}
	wg.Wait()
	return nil
}

// fillRange writes stream words lo through hi-1 into dst. The counter of
// the first block is start plus the number of whole blocks before lo.
func fillRange[W Word](gen Generator[W], key []W, start uint64, dst []W, lo, hi int) {
	size := gen.BlockLen()
	ctr := make([]W, size)
	buf := make([]W, size)
	incrWords(ctr, start)
	incrWords(ctr, uint64(lo)/uint64(size))
	gen.Block(buf, ctr, key)

	idx := size - 1 - lo%size
	for i := lo; i < hi; i++ {
		dst[i] = buf[idx]
		idx--
		if idx < 0 && i+1 < hi {
			incrWords(ctr, 1)
			gen.Block(buf, ctr, key)
			idx = size - 1
		}
	}
}
