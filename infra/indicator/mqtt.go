package indicator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kilianp07/zoa/core/model"
	"github.com/kilianp07/zoa/infra/mqtt"
)

const defaultTopicPrefix = "zoa"

// Snapshot is the JSON document published on <prefix>/indicator.
type Snapshot struct {
	Indicator string          `json:"indicator"`
	Color     string          `json:"color"`
	States    map[string]bool `json:"states"`
	Timestamp int64           `json:"timestamp"`
}

// MQTTPanel mirrors the outputs as retained MQTT messages: one
// "on"/"off" topic per LED colour plus a JSON snapshot.
type MQTTPanel struct {
	pub    mqtt.Publisher
	prefix string
	now    func() time.Time
}

// NewMQTTPanel returns a panel publishing under prefix.
func NewMQTTPanel(pub mqtt.Publisher, prefix string) *MQTTPanel {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		prefix = defaultTopicPrefix
	}
	return &MQTTPanel{pub: pub, prefix: prefix, now: time.Now}
}

// LEDTopic returns the topic for the given indicator's LED.
func (p *MQTTPanel) LEDTopic(ind model.Indicator) string {
	return fmt.Sprintf("%s/led/%s", p.prefix, ind.Color())
}

// SnapshotTopic returns the topic carrying the JSON snapshot.
func (p *MQTTPanel) SnapshotTopic() string { return p.prefix + "/indicator" }

// Show publishes "off" for every LED except ind, then "on" for ind, then
// the snapshot.
func (p *MQTTPanel) Show(ctx context.Context, ind model.Indicator) error {
	if !ind.Valid() {
		return fmt.Errorf("invalid indicator %d", ind)
	}
	states := model.StatesFor(ind)
	for _, i := range model.Indicators {
		if i == ind {
			continue
		}
		if err := p.publishLED(ctx, i, false); err != nil {
			return err
		}
	}
	if err := p.publishLED(ctx, ind, true); err != nil {
		return err
	}
	snap := Snapshot{
		Indicator: ind.String(),
		Color:     ind.Color(),
		States:    make(map[string]bool, model.NumIndicators),
		Timestamp: p.now().UnixMilli(),
	}
	for _, i := range model.Indicators {
		snap.States[i.Color()] = states[i]
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return p.pub.Publish(p.SnapshotTopic(), payload, true)
}

func (p *MQTTPanel) publishLED(ctx context.Context, ind model.Indicator, on bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload := "off"
	if on {
		payload = "on"
	}
	return p.pub.Publish(p.LEDTopic(ind), []byte(payload), true)
}

// Close closes the underlying publisher.
func (p *MQTTPanel) Close() error { return p.pub.Close() }
