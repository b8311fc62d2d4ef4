package model

import "time"

// VesselReport is a single decoded position report from a vessel.
// StationLat/StationLon hold the coordinates of the nearest weather station
// once station assignment has run; they are derived and recomputable.
type VesselReport struct {
	VesselID  string    `bson:"vesselId" json:"vessel_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`

	Status          string  `bson:"status" json:"status"`
	Lat             float64 `bson:"lat" json:"lat"`
	LatDir          string  `bson:"latDir" json:"lat_dir"`
	Lon             float64 `bson:"lon" json:"lon"`
	LonDir          string  `bson:"lonDir" json:"lon_dir"`
	SpeedOverGround float64 `bson:"spdOverGrnd" json:"spd_over_grnd"`
	Course          float64 `bson:"trueCourse" json:"true_course"`
	Datestamp       int64   `bson:"datestamp" json:"datestamp"`
	MagVariation    float64 `bson:"magVariation" json:"mag_variation"`
	MagVarDir       string  `bson:"magVarDir" json:"mag_var_dir"`

	StationLat float64 `bson:"stationLat,omitempty" json:"station_lat,omitempty"`
	StationLon float64 `bson:"stationLon,omitempty" json:"station_lon,omitempty"`
}

// WeatherStation is one known weather station. Data and Sources keep the
// raw provider payload as opaque text.
type WeatherStation struct {
	StationID string  `bson:"stationId" json:"station_id"`
	Lat       float64 `bson:"stationLat" json:"station_lat"`
	Lon       float64 `bson:"stationLon" json:"station_lon"`
	Data      string  `bson:"data,omitempty" json:"data,omitempty"`
	Sources   string  `bson:"sources,omitempty" json:"sources,omitempty"`
}

// WeatherObservation is one timestamped observation of a station, with the
// owning station's rounded coordinates denormalized onto the row.
type WeatherObservation struct {
	StationID    string    `bson:"stationId" json:"station_id"`
	TimestampUTC time.Time `bson:"timestampUtc" json:"timestamp_utc"`

	StationLat  float64 `bson:"stationLat" json:"station_lat"`
	StationLon  float64 `bson:"stationLon" json:"station_lon"`
	Temperature float64 `bson:"temp" json:"temp"`
	WindSpeed   float64 `bson:"windSpd" json:"wind_spd"`
	Description string  `bson:"description" json:"description"`
}

// Weather holds the observation fields attached to an aligned report.
type Weather struct {
	TimestampUTC time.Time `json:"timestamp_utc"`
	Temperature  float64   `json:"temp"`
	WindSpeed    float64   `json:"wind_spd"`
	Description  string    `json:"description"`
}

// AlignedRecord is a vessel report joined with at most one weather
// observation. Weather is nil when no observation exists within tolerance.
type AlignedRecord struct {
	VesselReport
	Weather *Weather `json:"weather"`
}

// Snapshot is an immutable in-memory copy of the loaded tables. Queries run
// against one snapshot for their whole duration, so a reload never exposes a
// partially updated view.
type Snapshot struct {
	Reports      []VesselReport
	Observations []WeatherObservation
}

// AvgSpeedRow is one (vessel, hour) average speed entry.
type AvgSpeedRow struct {
	VesselID string    `json:"vessel_id"`
	Hour     time.Time `json:"hour"`
	AvgSpeed float64   `json:"avg_speed"`
}

// WindExtremes holds max and min wind speed within an hour bucket.
type WindExtremes struct {
	Max float64 `json:"max_wind_speed"`
	Min float64 `json:"min_wind_speed"`
}

// WindExtremesRow is one hour-bucket wind extremes entry.
type WindExtremesRow struct {
	Hour time.Time `json:"hour"`
	WindExtremes
}

// RoutePoint is one point of a vessel's route with the weather observed at
// it. Weather fields are nil where no observation matched within tolerance.
type RoutePoint struct {
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
	Timestamp   time.Time `json:"timestamp"`
	Description *string   `json:"description"`
	Temperature *float64  `json:"temp"`
	WindSpeed   *float64  `json:"wind_spd"`
}
