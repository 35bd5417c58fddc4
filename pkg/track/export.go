package track

import "github.com/corvid-vision/mottrack/pkg/geom"

// ExportedTrack is the JSON-serializable snapshot of a track handed to
// external sinks (the MQTT telemetry publisher). Grounded on the
// teacher's own person.ExportedPerson: a flat id/position record, here
// carrying the full bbox, class and color rather than a single point.
type ExportedTrack struct {
	Id         int          `json:"id"`
	ClassId    int          `json:"class_id"`
	ClassName  string       `json:"class_name"`
	BBox       geom.BBox    `json:"bbox"`
	Trajectory []geom.Point `json:"trajectory"`
	Speed      float32      `json:"speed"`
	Color      [4]uint8     `json:"color"`
}

// Export snapshots t into its wire representation.
func (t *Track) Export() *ExportedTrack {
	return &ExportedTrack{
		Id:         t.id,
		ClassId:    t.classID,
		ClassName:  t.className,
		BBox:       t.CurrentBBox(),
		Trajectory: t.Trajectory(),
		Speed:      t.Speed(),
		Color:      [4]uint8{t.color.R, t.color.G, t.color.B, t.color.A},
	}
}
