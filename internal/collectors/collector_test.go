package collectors

import (
	"sync"
	"testing"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/svcerrors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRecord(ts int64) models.OperationRecord {
	return models.OperationRecord{
		Operation:    models.OperationGet,
		ResourceName: "users",
		Timestamp:    ts,
		LatencyMs:    10,
		ItemCount:    1,
	}
}

func TestNewCollector_RejectsSampleRateOutOfRange(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{-0.1, 1.01, 2} {
		c, err := NewCollector(Options{Enabled: true, SampleRate: rate}, zerolog.Nop())

		require.Error(t, err)
		assert.Nil(t, c)
		svcErr, ok := svcerrors.AsServiceError(err)
		require.True(t, ok, "expected ServiceError")
		assert.Equal(t, "COL_1000", svcErr.Code)
		assert.Equal(t, "invalid_argument", svcErr.Category)
		assert.Contains(t, svcErr.Message, "between 0 and 1")
	}
}

func TestNewCollector_AcceptsBoundarySampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{0, 0.5, 1} {
		c, err := NewCollector(Options{Enabled: true, SampleRate: rate}, zerolog.Nop())
		require.NoError(t, err)
		assert.NotNil(t, c)
	}
}

func TestCollector_Record_SampleRateZeroRetainsNothing(t *testing.T) {
	t.Parallel()

	c, err := newCollector(Options{Enabled: true, SampleRate: 0}, zerolog.Nop(), func() float64 { return 0 })
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		c.Record(getRecord(int64(i)))
	}

	assert.Empty(t, c.Export())
}

func TestCollector_Record_SampleRateOneRetainsEverything(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		c.Record(getRecord(int64(i)))
	}

	assert.Len(t, c.Export(), 500)
}

func TestCollector_Record_KeepsWhenDrawAtMostSampleRate(t *testing.T) {
	t.Parallel()

	draws := []float64{0.1, 0.5, 0.50001, 0.9}
	i := 0
	c, err := newCollector(Options{Enabled: true, SampleRate: 0.5}, zerolog.Nop(), func() float64 {
		u := draws[i]
		i++
		return u
	})
	require.NoError(t, err)

	for ts := range draws {
		c.Record(getRecord(int64(ts)))
	}

	exported := c.Export()
	require.Len(t, exported, 2)
	assert.Equal(t, int64(0), exported[0].Timestamp)
	assert.Equal(t, int64(1), exported[1].Timestamp)
}

func TestCollector_Record_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(Options{Enabled: false, SampleRate: 1}, zerolog.Nop())
	require.NoError(t, err)

	c.Record(getRecord(1))

	assert.False(t, c.IsEnabled())
	assert.Empty(t, c.Export())
	assert.Empty(t, c.Snapshot())
}

func TestCollector_Export_IsIndependentCopy(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	record := getRecord(1)
	record.ConsumedReadUnits = models.Ptr(1.0)
	c.Record(record)

	exported := c.Export()
	require.Len(t, exported, 1)
	exported[0].ResourceName = "mutated"
	*exported[0].ConsumedReadUnits = 42
	_ = append(exported, getRecord(2))

	again := c.Export()
	require.Len(t, again, 1)
	assert.Equal(t, "users", again[0].ResourceName)
	assert.Equal(t, 1.0, *again[0].ConsumedReadUnits)
}

func TestCollector_Reset_ClearsAndRecordingResumes(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	c.Record(getRecord(1))
	c.Record(getRecord(2))
	c.Reset()
	assert.Empty(t, c.Export())

	c.Record(getRecord(3))
	exported := c.Export()
	require.Len(t, exported, 1)
	assert.Equal(t, int64(3), exported[0].Timestamp)
}

func TestCollector_Snapshot_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	for _, ts := range []int64{30, 10, 20} {
		c.Record(getRecord(ts))
	}

	snapshot := c.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, []int64{30, 10, 20}, []int64{snapshot[0].Timestamp, snapshot[1].Timestamp, snapshot[2].Timestamp})
}

func TestCollector_Record_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	c, err := NewCollector(DefaultOptions(), zerolog.Nop())
	require.NoError(t, err)

	const writers = 16
	const perWriter = 250

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.Record(getRecord(int64(i)))
				if i%50 == 0 {
					_ = c.Snapshot()
				}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, c.Snapshot(), writers*perWriter)
}

func TestCollector_Thresholds(t *testing.T) {
	t.Parallel()

	thresholds := Thresholds{SlowQueryMs: 250, HighReadUnits: 40, HighWriteUnits: 20}
	c, err := NewCollector(Options{Enabled: true, SampleRate: 1, Thresholds: thresholds}, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, c.IsEnabled())
	assert.Equal(t, thresholds, c.Thresholds())

	slow := getRecord(1)
	slow.LatencyMs = 500
	slow.ConsumedReadUnits = models.Ptr(50.0)
	slow.ConsumedWriteUnits = models.Ptr(25.0)
	c.Record(slow)

	assert.Len(t, c.Export(), 1)
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	options := DefaultOptions()
	assert.True(t, options.Enabled)
	assert.Equal(t, 1.0, options.SampleRate)
	assert.Equal(t, Thresholds{SlowQueryMs: 1000, HighReadUnits: 100, HighWriteUnits: 100}, options.Thresholds)
}
