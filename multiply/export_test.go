package multiply

import "github.com/katalvlaran/matmul/matrix"

// Test bridge: lets multiply_test replace the block kernel to simulate
// failing workers without widening the production API.

// Kernel is the signature of the block kernel.
type Kernel = func(a, b [][]matrix.Element, blk RowBlock, cols int) [][]matrix.Element

// ComputeBlock exposes the production kernel.
var ComputeBlock Kernel = computeBlock

// SwapKernel installs k and returns a function restoring the previous kernel.
func SwapKernel(k Kernel) (restore func()) {
	prev := blockKernel
	blockKernel = k
	return func() { blockKernel = prev }
}
