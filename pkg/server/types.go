package server

import (
	"github.com/millworks/millwright/pkg/gcode"
)

// SpeedsResponse is the body returned by GET /v1/speeds.
type SpeedsResponse struct {
	Material     string  `json:"material"`
	Tool         string  `json:"tool"`
	Diameter     float64 `json:"diameter"`
	SurfaceSpeed float64 `json:"sfm"`
	RPM          float64 `json:"rpm"`
	Interpolated bool    `json:"interpolated"`
}

// FeedRequest is the body accepted by POST /v1/feed.
type FeedRequest struct {
	// ToolID is the flattened inventory identifier of the cutter.
	ToolID int `json:"tool_id"`

	// Material is the workpiece material.
	Material string `json:"material"`
}

// FeedResponse is the body returned by POST /v1/feed.
type FeedResponse struct {
	Machine      string        `json:"machine"`
	ToolID       int           `json:"tool_id"`
	Material     string        `json:"material"`
	RPM          float64       `json:"rpm"`
	SurfaceSpeed float64       `json:"surface_speed"`
	FeedRate     float64       `json:"feed_rate"`
	Log          []gcode.Entry `json:"log"`
}
