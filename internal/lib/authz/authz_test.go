package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertOwned(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  int64
		callerID int64
		wantErr  error
	}{
		{
			name:     "owner matches caller",
			ownerID:  42,
			callerID: 42,
			wantErr:  nil,
		},
		{
			name:     "owner differs from caller",
			ownerID:  42,
			callerID: 7,
			wantErr:  ErrNotOwned,
		},
		{
			name:     "zero ids match",
			ownerID:  0,
			callerID: 0,
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertOwned(tt.ownerID, tt.callerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
