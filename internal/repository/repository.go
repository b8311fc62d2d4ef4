// Package repository provides a named-table store on top of mongo, with
// replace/append writes and key-ordered reads.
package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katiamach/vessel-weather-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Table names.
const (
	RawMessagesTable         = "rawMessages"
	StationsTable            = "stations"
	WeatherDataTable         = "weatherData"
	RawMessagesStationsTable = "rawMessagesStations"
)

// WriteMode controls behavior when the target table already has rows.
type WriteMode string

// Write modes.
const (
	ModeReplace WriteMode = "replace"
	ModeAppend  WriteMode = "append"
)

// DB errors.
var (
	ErrNoReports      = errors.New("there are no vessel reports yet")
	ErrNoStations     = errors.New("there are no stations yet")
	ErrNoObservations = errors.New("there are no weather observations yet")
)

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database.
func New() (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(os.Getenv("DB_NAME"))

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// WriteTable writes the given rows into the named table. ModeReplace drops
// whatever the table held before; ModeAppend adds to it.
func (r *Repository) WriteTable(ctx context.Context, table string, rows []interface{}, mode WriteMode) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.db.Collection(table)

	if mode == ModeReplace {
		if err := collection.Drop(ctxWithTimeout); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	res, err := collection.InsertMany(ctxWithTimeout, rows)
	if err != nil {
		return err
	}
	if len(res.InsertedIDs) != len(rows) {
		return errors.New("not all data was inserted")
	}

	return nil
}

// WriteVesselReports writes vessel reports into the named table.
func (r *Repository) WriteVesselReports(ctx context.Context, table string, reports []model.VesselReport, mode WriteMode) error {
	rows := make([]interface{}, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, report)
	}

	return r.WriteTable(ctx, table, rows, mode)
}

// WriteStations writes weather stations into the stations table.
func (r *Repository) WriteStations(ctx context.Context, stations []model.WeatherStation, mode WriteMode) error {
	rows := make([]interface{}, 0, len(stations))
	for _, station := range stations {
		rows = append(rows, station)
	}

	return r.WriteTable(ctx, StationsTable, rows, mode)
}

// WriteObservations writes weather observations into the weatherData table.
func (r *Repository) WriteObservations(ctx context.Context, observations []model.WeatherObservation, mode WriteMode) error {
	rows := make([]interface{}, 0, len(observations))
	for _, obs := range observations {
		rows = append(rows, obs)
	}

	return r.WriteTable(ctx, WeatherDataTable, rows, mode)
}

// ReadAssignedReports reads vessel reports with assigned station
// coordinates, sorted by (vessel, timestamp).
func (r *Repository) ReadAssignedReports(ctx context.Context) ([]model.VesselReport, error) {
	return r.readReports(ctx, RawMessagesStationsTable)
}

// ReadRawReports reads vessel reports without station assignment, sorted by
// (vessel, timestamp).
func (r *Repository) ReadRawReports(ctx context.Context) ([]model.VesselReport, error) {
	return r.readReports(ctx, RawMessagesTable)
}

func (r *Repository) readReports(ctx context.Context, table string) ([]model.VesselReport, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "vesselId", Value: 1}, {Key: "timestamp", Value: 1}})

	cur, err := r.db.Collection(table).Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctxWithTimeout)

	var reports []model.VesselReport
	for cur.Next(ctxWithTimeout) {
		report := model.VesselReport{}
		if err := cur.Decode(&report); err != nil {
			return nil, err
		}

		reports = append(reports, report)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(reports) == 0 {
		return nil, ErrNoReports
	}

	return reports, nil
}

// ReadStations reads the weather station table in insertion order.
func (r *Repository) ReadStations(ctx context.Context) ([]model.WeatherStation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.db.Collection(StationsTable).Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctxWithTimeout)

	var stations []model.WeatherStation
	for cur.Next(ctxWithTimeout) {
		station := model.WeatherStation{}
		if err := cur.Decode(&station); err != nil {
			return nil, err
		}

		stations = append(stations, station)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(stations) == 0 {
		return nil, ErrNoStations
	}

	return stations, nil
}

// ReadObservations reads weather observations sorted by timestamp.
func (r *Repository) ReadObservations(ctx context.Context) ([]model.WeatherObservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestampUtc", Value: 1}})

	cur, err := r.db.Collection(WeatherDataTable).Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctxWithTimeout)

	var observations []model.WeatherObservation
	for cur.Next(ctxWithTimeout) {
		obs := model.WeatherObservation{}
		if err := cur.Decode(&obs); err != nil {
			return nil, err
		}

		observations = append(observations, obs)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(observations) == 0 {
		return nil, ErrNoObservations
	}

	return observations, nil
}
