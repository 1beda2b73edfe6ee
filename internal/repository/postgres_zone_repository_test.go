package repository

import (
	"errors"
	"testing"
)

func TestMarkBatchAborted(t *testing.T) {
	marshalErr := errors.New("marshal failed")
	rowErr := errors.New("duplicate key")

	outcomes := []UpsertOutcome{
		{ID: "zone-1"},
		{ID: "zone-2", Err: marshalErr},
		{ID: "zone-3", Err: rowErr},
		{ID: "zone-4"},
	}

	markBatchAborted(outcomes, rowErr)

	if outcomes[0].Err == nil || !errors.Is(outcomes[0].Err, rowErr) {
		t.Errorf("zone-1 should be marked rolled back, got %v", outcomes[0].Err)
	}
	if !errors.Is(outcomes[1].Err, marshalErr) {
		t.Errorf("zone-2 should keep its own error, got %v", outcomes[1].Err)
	}
	if outcomes[2].Err != rowErr {
		t.Errorf("zone-3 should keep the raw row error, got %v", outcomes[2].Err)
	}
	if outcomes[3].Err == nil || !errors.Is(outcomes[3].Err, rowErr) {
		t.Errorf("zone-4 should be marked rolled back, got %v", outcomes[3].Err)
	}
}

func TestMarkBatchAborted_NoError(t *testing.T) {
	outcomes := []UpsertOutcome{{ID: "zone-1"}, {ID: "zone-2"}}

	markBatchAborted(outcomes, nil)

	for _, o := range outcomes {
		if o.Err != nil {
			t.Errorf("%s should be untouched, got %v", o.ID, o.Err)
		}
	}
}
