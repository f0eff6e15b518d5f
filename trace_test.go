package edc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Result = (*VRCResult)(nil)
	_ Result = (*VRCVerifyResult)(nil)
	_ Result = (*LRCResult)(nil)
	_ Result = (*LRCVerifyResult)(nil)
	_ Result = (*DivisionResult)(nil)
	_ Result = (*CRCResult)(nil)
	_ Result = (*CRCVerifyResult)(nil)
	_ Result = (*ChecksumResult)(nil)
	_ Result = (*ChecksumVerifyResult)(nil)
	_ Result = (*HammingResult)(nil)
	_ Result = (*HammingVerifyResult)(nil)

	_ Verdict = (*VRCVerifyResult)(nil)
	_ Verdict = (*LRCVerifyResult)(nil)
	_ Verdict = (*CRCVerifyResult)(nil)
	_ Verdict = (*ChecksumVerifyResult)(nil)
	_ Verdict = (*HammingVerifyResult)(nil)
)

func TestTrace_FreshPerCall(t *testing.T) {
	a, err := EncodeCRC("1101011011", "1011")
	require.NoError(t, err)
	b, err := EncodeCRC("1101011011", "1011")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	a.Steps[0].Register = "0000"
	assert.Equal(t, "1101", b.Steps[0].Register)
}

func TestConcurrentCalls(t *testing.T) {
	want, err := EncodeHamming("1011001110")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*HammingResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = EncodeHamming("1011001110")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
