package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/kilianp07/zoa/core/events"
	coremetrics "github.com/kilianp07/zoa/core/metrics"
	"github.com/kilianp07/zoa/infra/logger"
)

// InfluxSink writes balancing observations to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordStatus writes one unit_status point per unit and a balance_totals point.
func (s *InfluxSink) RecordStatus(ev events.StatusEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, u := range ev.Status.Units {
		p := write.NewPointWithMeasurement("unit_status").
			AddTag("unit", u.Name).
			AddTag("scenario", ev.Scenario).
			AddTag("run_id", ev.RunID).
			AddField("supply_w", round3(u.Supply)).
			AddField("demand_w", round3(u.Demand)).
			AddField("net_w", round3(u.Net)).
			SetTime(ev.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	p := write.NewPointWithMeasurement("balance_totals").
		AddTag("scenario", ev.Scenario).
		AddTag("run_id", ev.RunID).
		AddField("surplus_w", round3(ev.Status.TotalSurplus)).
		AddField("deficit_w", round3(ev.Status.TotalDeficit)).
		AddField("net_w", round3(ev.Status.Net())).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordIndicator writes the lit indicator.
func (s *InfluxSink) RecordIndicator(ev events.IndicatorEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("indicator_state").
		AddTag("indicator", ev.Indicator.String()).
		AddTag("color", ev.Indicator.Color()).
		AddTag("scenario", ev.Scenario).
		AddTag("run_id", ev.RunID).
		AddField("solar_used", ev.SolarUsed).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
