package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_ScheduleInterval(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)

	id, err := scheduler.ScheduleInterval(5*time.Hour, func() {})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestScheduler_ScheduleInterval_RejectsNonPositive(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)

	_, err := scheduler.ScheduleInterval(0, func() {})
	require.Error(t, err)

	_, err = scheduler.ScheduleInterval(-time.Hour, func() {})
	require.Error(t, err)
}

func TestScheduler_ScheduleDaily(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)

	id, err := scheduler.ScheduleDaily("21:00", func() {})
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestScheduler_ScheduleDaily_RejectsMalformedTime(t *testing.T) {
	scheduler := NewSchedulerService(time.UTC)

	for _, raw := range []string{"", "21", "24:00", "12:60", "noon"} {
		_, err := scheduler.ScheduleDaily(raw, func() {})
		assert.Error(t, err, "time %q", raw)
	}
}
