package hosts

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/latency-testnet/config"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	nodes := Build(config.Topology{
		{Latency: "100ms", Count: 1},
		{Latency: "200ms", Count: 2},
	})
	expected := []Node{
		{Name: "drand_container_100ms_0", Latency: "100ms", VolumeName: "drand_volume_100ms_0"},
		{Name: "drand_container_200ms_0", Latency: "200ms", VolumeName: "drand_volume_200ms_0"},
		{Name: "drand_container_200ms_1", Latency: "200ms", VolumeName: "drand_volume_200ms_1"},
	}
	assert.Truef(t, cmp.Equal(expected, nodes), "Expected %v but got %v", expected, nodes)
}

func TestBuildZeroCount(t *testing.T) {
	nodes := Build(config.Topology{
		{Latency: "100ms", Count: 2},
		{Latency: "200ms", Count: 0},
		{Latency: "300ms", Count: 1},
	})
	expected := []Node{
		{Name: "drand_container_100ms_0", Latency: "100ms", VolumeName: "drand_volume_100ms_0"},
		{Name: "drand_container_100ms_1", Latency: "100ms", VolumeName: "drand_volume_100ms_1"},
		{Name: "drand_container_300ms_0", Latency: "300ms", VolumeName: "drand_volume_300ms_0"},
	}
	assert.Truef(t, cmp.Equal(expected, nodes), "Expected %v but got %v", expected, nodes)

	assert.Empty(t, Build(nil))
	assert.Empty(t, Build(config.Topology{{Latency: "100ms", Count: 0}}))
}

func TestBuildProperties(t *testing.T) {
	topologies := []config.Topology{
		config.DefaultTopology(),
		{{Latency: "a", Count: 7}},
		{{Latency: "1ms", Count: 3}, {Latency: "2ms", Count: 0}, {Latency: "3ms", Count: 11}},
		{{Latency: "not a latency", Count: 2}},
	}

	for _, top := range topologies {
		nodes := Build(top)
		assert.Lenf(t, nodes, top.Total(), "topology %v", top)

		names := make(map[string]bool)
		volumes := make(map[string]bool)
		idx := make(map[string]int)
		for _, n := range nodes {
			i := idx[n.Latency]
			idx[n.Latency]++
			assert.Equal(t, fmt.Sprintf("drand_container_%s_%d", n.Latency, i), n.Name)
			assert.Equal(t, fmt.Sprintf("drand_volume_%s_%d", n.Latency, i), n.VolumeName)
			assert.Falsef(t, names[n.Name], "duplicate name %s", n.Name)
			assert.Falsef(t, volumes[n.VolumeName], "duplicate volume %s", n.VolumeName)
			names[n.Name] = true
			volumes[n.VolumeName] = true
		}

		again := Build(top)
		assert.Truef(t, cmp.Equal(nodes, again), "Build is not idempotent for %v", top)
	}
}

func TestNodeFields(t *testing.T) {
	n := Node{Name: "c", Latency: "l", VolumeName: "v"}
	assert.Equal(t, map[string]string{"name": "c", "latency": "l", "volume_name": "v"}, n.Fields())
}
