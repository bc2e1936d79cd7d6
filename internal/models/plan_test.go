package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetly/meetly/internal/common"
)

func TestParsePlan(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Plan
		wantErr bool
	}{
		{name: "base", in: "BASE", want: PlanBase},
		{name: "premium", in: "PREMIUM", want: PlanPremium},
		{name: "lowercase is rejected", in: "base", wantErr: true},
		{name: "unknown", in: "GOLD", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlan(tt.in)
			if tt.wantErr {
				require.True(t, errors.Is(err, common.ErrUnknownPlan), "want ErrUnknownPlan, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_MeetingLimit(t *testing.T) {
	assert.Equal(t, 2, PlanBase.MeetingLimit())
	assert.Equal(t, 5, PlanPremium.MeetingLimit())
}
