package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_IDsAreSequential(t *testing.T) {
	gen := NewGenerator(DefaultCatalog(), 0, 500, rand.New(rand.NewSource(1)))

	for want := int64(1); want <= 10; want++ {
		req := gen.Generate(0)
		assert.Equal(t, want, req.ID)
	}
	assert.Equal(t, int64(10), gen.Count())
}

func TestGenerator_DemandsComeFromCatalog(t *testing.T) {
	catalog := []RequestType{
		{Name: "a", CPU: 10, Memory: 6},
		{Name: "b", CPU: 25, Memory: 10},
	}
	gen := NewGenerator(catalog, 0, 500, rand.New(rand.NewSource(2)))

	for i := 0; i < 100; i++ {
		req := gen.Generate(int64(i))
		found := false
		for _, rt := range catalog {
			if req.CPUDemand == rt.CPU && req.MemoryDemand == rt.Memory {
				found = true
				break
			}
		}
		require.True(t, found, "demands (%v, %v) not in catalog", req.CPUDemand, req.MemoryDemand)
		assert.Equal(t, int64(i), req.ArrivalTime)
	}
}

func TestGenerator_DurationWithinHalfOpenRange(t *testing.T) {
	gen := NewGenerator(DefaultCatalog(), 0, 500, rand.New(rand.NewSource(3)))

	for i := 0; i < 1000; i++ {
		req := gen.Generate(0)
		require.Greater(t, req.ServiceDuration, int64(0))
		require.LessOrEqual(t, req.ServiceDuration, int64(500))
	}
}

func TestGenerator_DegenerateRange_IsConstant(t *testing.T) {
	gen := NewGenerator(DefaultCatalog(), 2, 3, rand.New(rand.NewSource(4)))

	for i := 0; i < 20; i++ {
		assert.Equal(t, int64(3), gen.Generate(0).ServiceDuration)
	}
}

func TestGenerator_Reset_RestartsIDSequence(t *testing.T) {
	gen := NewGenerator(DefaultCatalog(), 0, 500, rand.New(rand.NewSource(5)))
	gen.Generate(0)
	gen.Generate(0)

	gen.Reset()

	assert.Equal(t, int64(0), gen.Count())
	assert.Equal(t, int64(1), gen.Generate(0).ID)
}

func TestRequest_CompletedBy_BoundaryIsInclusive(t *testing.T) {
	req := &Request{ID: 1, ServiceDuration: 10, ArrivalTime: 5}

	assert.False(t, req.CompletedBy(14))
	assert.True(t, req.CompletedBy(15), "elapsed == duration completes")
	assert.True(t, req.CompletedBy(16))
}

func TestRequest_String_IncludesID(t *testing.T) {
	req := Request{ID: 7, CPUDemand: 10, MemoryDemand: 6}
	assert.Contains(t, req.String(), "ID: 7")
}

func TestDefaultCatalog_DemandsWithinRange(t *testing.T) {
	for _, rt := range DefaultCatalog() {
		assert.GreaterOrEqual(t, rt.CPU, 0.0, rt.Name)
		assert.LessOrEqual(t, rt.CPU, 100.0, rt.Name)
		assert.GreaterOrEqual(t, rt.Memory, 0.0, rt.Name)
		assert.LessOrEqual(t, rt.Memory, 100.0, rt.Name)
	}
}
