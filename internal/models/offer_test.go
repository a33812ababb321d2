package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateFor(t *testing.T) {
	hm, ok := GateFor(RoleHiringManager)
	require.True(t, ok)
	assert.Equal(t, OfferPendingHM, hm.Pending)
	assert.Equal(t, OfferPendingBH, hm.Next)

	bh, ok := GateFor(RoleBusinessHead)
	require.True(t, ok)
	assert.Equal(t, OfferPendingBH, bh.Pending)
	assert.Equal(t, OfferPendingHR, bh.Next)

	hr, ok := GateFor(RoleHRManager)
	require.True(t, ok)
	assert.Equal(t, OfferPendingHR, hr.Pending)
	assert.Equal(t, OfferApproved, hr.Next)

	_, ok = GateFor(RoleRecruiter)
	assert.False(t, ok)
	_, ok = GateFor(RoleAdmin)
	assert.False(t, ok)
}

func TestOfferStatusTerminal(t *testing.T) {
	assert.True(t, OfferApproved.Terminal())
	assert.True(t, OfferRejected.Terminal())
	for _, s := range []OfferStatus{OfferPendingHM, OfferPendingBH, OfferPendingHR} {
		assert.False(t, s.Terminal(), string(s))
	}
}

func TestDecisionValid(t *testing.T) {
	assert.True(t, DecisionApproved.Valid())
	assert.True(t, DecisionRejected.Valid())
	assert.False(t, Decision("Maybe").Valid())
	assert.False(t, Decision("").Valid())
}
