// Package multiply implements sequential and parallel dense matrix products.
//
// What:
//
//   - Sequential: reference i→j→k triple loop, single goroutine.
//   - Partition: splits output rows [0, n) into T contiguous blocks,
//     block[th] = [th*n/T, (th+1)*n/T).
//   - Parallel: fork-join over T fresh goroutines (T = runtime.NumCPU() by
//     default). Each worker owns one row block and reads A and B as shared
//     read-only data. Results come back through one buffered channel and are
//     placed by the coordinator. All workers are joined before return.
//   - Pool: the same contract on a fixed set of goroutines reused across calls.
//
// Why:
//
//   - Compare wall-clock cost of single- vs multi-core multiplication.
//   - Sequential doubles as the correctness oracle for the parallel paths.
//
// Errors:
//
//   - ErrEmptyInput         A or B has zero rows (no worker is started)
//   - ErrDimensionMismatch  A.Cols != B.Rows    (no worker is started)
//   - ErrWorkerFailed       a worker panicked or produced a short block
//   - ErrWorkerCount        Partition called with T < 1
//   - ErrPoolClosed         Pool.Multiply after Close
//
// Complexity:
//
//   - Sequential: Time O(m*k*n), Memory O(m*n)
//   - Parallel:   Time O(m*k*n/T) ideal wall clock, Memory O(m*n)
//   - Partition:  Time O(T)
//
// Arithmetic is int64 and wraps on overflow; inputs in [0, 1000) stay far
// from the limit for any practical size.
package multiply
