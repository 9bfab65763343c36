// Package hosts builds the list of simulated drand nodes that the compose
// template is rendered with.
package hosts

import (
	"strconv"

	"github.com/latency-testnet/common"
	"github.com/latency-testnet/config"
)

// Node describes one simulated drand container and its data volume.
type Node struct {
	Name       string
	Latency    string
	VolumeName string
}

// Fields returns the node keyed by the names templates refer to it with.
func (n Node) Fields() map[string]string {
	return map[string]string{
		"name":        n.Name,
		"latency":     n.Latency,
		"volume_name": n.VolumeName,
	}
}

// Build appends Count nodes for every class of t, in order, indexing each
// class from zero. Labels are used as given.
func Build(t config.Topology) []Node {
	nodes := make([]Node, 0, t.Total())
	for _, c := range t {
		for i := 0; i < c.Count; i++ {
			suffix := c.Latency + "_" + strconv.Itoa(i)
			nodes = append(nodes, Node{
				Name:       common.ContainerPrefix + suffix,
				Latency:    c.Latency,
				VolumeName: common.VolumePrefix + suffix,
			})
		}
	}
	return nodes
}
