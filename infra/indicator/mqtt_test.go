package indicator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/zoa/core/model"
)

type message struct {
	topic    string
	payload  string
	retained bool
}

type fakePublisher struct {
	msgs   []message
	failOn string
	closed bool
}

func (f *fakePublisher) Publish(topic string, payload []byte, retained bool) error {
	if topic == f.failOn {
		return errors.New("publish failed")
	}
	f.msgs = append(f.msgs, message{topic, string(payload), retained})
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func TestMQTTPanelPublishesStates(t *testing.T) {
	pub := &fakePublisher{}
	p := NewMQTTPanel(pub, "site/")
	p.now = func() time.Time { return time.UnixMilli(1000) }

	require.NoError(t, p.Show(context.Background(), model.IndicatorSolar))
	require.Len(t, pub.msgs, 5)
	for _, m := range pub.msgs[:3] {
		assert.Equal(t, "off", m.payload, m.topic)
		assert.True(t, m.retained)
	}
	assert.Equal(t, message{"site/led/yellow", "on", true}, pub.msgs[3])

	last := pub.msgs[4]
	assert.Equal(t, "site/indicator", last.topic)
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(last.payload), &snap))
	assert.Equal(t, "solar", snap.Indicator)
	assert.Equal(t, "yellow", snap.Color)
	assert.Equal(t, int64(1000), snap.Timestamp)
	assert.Equal(t, map[string]bool{"green": false, "red": false, "white": false, "yellow": true}, snap.States)

	require.NoError(t, p.Close())
	assert.True(t, pub.closed)
}

func TestMQTTPanelDefaultPrefixAndErrors(t *testing.T) {
	pub := &fakePublisher{failOn: "zoa/led/white"}
	p := NewMQTTPanel(pub, "")
	assert.Equal(t, "zoa/led/green", p.LEDTopic(model.IndicatorSurplus))
	assert.Error(t, p.Show(context.Background(), model.IndicatorBalanced))
	assert.Error(t, p.Show(context.Background(), model.Indicator(-1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewMQTTPanel(&fakePublisher{}, "").Show(ctx, model.IndicatorSurplus), context.Canceled)
}

func TestConsolePanel(t *testing.T) {
	p := NewConsolePanel(nil)
	require.NoError(t, p.Show(context.Background(), model.IndicatorDeficit))
	assert.Equal(t, model.StatesFor(model.IndicatorDeficit), p.States())
	assert.NoError(t, p.Close())
}
