package sensor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/internal/meter"
	"github.com/joeydtaylor/hrvkit/pkg/internal/sensor"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

func TestSensor_RegisterAndInvoke(t *testing.T) {
	s := sensor.NewSensor(context.Background())

	var gotPath string
	var gotLabel string
	var gotValue float64
	s.RegisterOnRecordingStart(func(cm types.ComponentMetadata, path string) {
		gotPath = path
	})
	s.RegisterOnWindowProduced(func(cm types.ComponentMetadata, label string, value float64) {
		gotLabel = label
		gotValue = value
	})

	cm := types.ComponentMetadata{ID: "x", Type: "PIPELINE"}
	s.InvokeOnRecordingStart(cm, "data/s1/02/BVP.csv")
	s.InvokeOnWindowProduced(cm, "s1_02", 707.11)

	if gotPath != "data/s1/02/BVP.csv" {
		t.Errorf("recording start path = %q", gotPath)
	}
	if gotLabel != "s1_02" || gotValue != 707.11 {
		t.Errorf("window produced = (%q, %v)", gotLabel, gotValue)
	}
}

func TestSensor_MultipleCallbacksRunInOrder(t *testing.T) {
	s := sensor.NewSensor(context.Background())

	var order []int
	s.RegisterOnRunStart(func(cm types.ComponentMetadata, files int) { order = append(order, 1) })
	s.RegisterOnRunStart(func(cm types.ComponentMetadata, files int) { order = append(order, 2) })

	s.InvokeOnRunStart(types.ComponentMetadata{}, 3)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("callback order = %v, want [1 2]", order)
	}
}

func TestSensor_MeterIncrements(t *testing.T) {
	m := meter.NewMeter(context.Background())
	s := sensor.NewSensor(context.Background(), sensor.WithMeter(m))

	cm := types.ComponentMetadata{}
	s.InvokeOnWindowProduced(cm, "s1_02", 500)
	s.InvokeOnWindowProduced(cm, "s1_02", 510)
	s.InvokeOnWindowSkipped(cm, "s1_02", types.SkipTooFewPeaks)
	s.InvokeOnRecordingProcessed(cm, "data/s1/02/BVP.csv", "s1_02", 2)
	s.InvokeOnRecordingSkipped(cm, "data/s1/03/BVP.csv", errors.New("no mapping"))

	if got := m.GetCount(types.MetricWindowProducedCount); got != 2 {
		t.Errorf("window produced = %d, want 2", got)
	}
	if got := m.GetCount(types.MetricWindowSkippedCount); got != 1 {
		t.Errorf("window skipped = %d, want 1", got)
	}
	if got := m.GetCount(types.MetricRecordingProcessedCount); got != 1 {
		t.Errorf("recording processed = %d, want 1", got)
	}
	if got := m.GetCount(types.MetricRecordingSkippedCount); got != 1 {
		t.Errorf("recording skipped = %d, want 1", got)
	}
	if got := m.GetCount(types.MetricValueEmittedCount); got != 2 {
		t.Errorf("values emitted = %d, want 2", got)
	}
}

func TestSensor_OptionsRegisterCallbacks(t *testing.T) {
	var report types.RunReport
	s := sensor.NewSensor(context.Background(),
		sensor.WithOnRunComplete(func(cm types.ComponentMetadata, r types.RunReport) {
			report = r
		}),
	)

	s.InvokeOnRunComplete(types.ComponentMetadata{}, types.RunReport{FilesProcessed: 4, WindowsProduced: 88})
	if report.FilesProcessed != 4 || report.WindowsProduced != 88 {
		t.Errorf("run report = %+v", report)
	}
}
