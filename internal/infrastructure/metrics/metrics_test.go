package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	counter := StoreOperationsTotal.WithLabelValues("action", "toggle", "ok")
	before := testutil.ToFloat64(counter)

	ObserveOperation("action", "toggle", "ok", time.Now())

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordCascadeDeleteIgnoresZero(t *testing.T) {
	before := testutil.ToFloat64(CascadeDeletedActionsTotal)

	RecordCascadeDelete(0)
	RecordCascadeDelete(3)

	assert.Equal(t, before+3, testutil.ToFloat64(CascadeDeletedActionsTotal))
}
