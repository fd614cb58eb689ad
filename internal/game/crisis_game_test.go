package game

import (
	"context"
	"testing"

	"labtycoon/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crisisEveryTick(b *config.Balance) {
	zeroExpenses(b)
	b.CrisisChance = 1
	b.CrisisWindowMinTicks = 1
	b.CrisisWindowMaxTicks = 1
}

func TestCrisis_TriggersWhenWindowElapses(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(1, crisisEveryTick)
	// Zero the constructor-rolled window so the roll happens now.
	e.crisisTimer = 0

	res := e.Tick(ctx)
	require.True(t, res.CrisisTriggered)

	p := e.PendingCrisisView()
	require.NotNil(t, p)
	assert.NotEmpty(t, p.Event.Title)
	assert.Len(t, p.Event.Responses, 2)
	assert.Equal(t, int64(1), p.TriggeredAt)
}

func TestCrisis_OnlyOnePendingAtATime(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(2, crisisEveryTick)
	e.crisisTimer = 0

	e.Tick(ctx)
	first := e.PendingCrisisView()
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		res := e.Tick(ctx)
		assert.False(t, res.CrisisTriggered, "elapsed windows are lost while a crisis is open")
	}
	assert.Equal(t, first.Event.Title, e.PendingCrisisView().Event.Title)
}

func TestResolveCrisis_AppliesEffectOnce(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(3, crisisEveryTick)
	e.crisisTimer = 0
	e.Tick(ctx)

	p := e.PendingCrisisView()
	require.NotNil(t, p)
	effect := p.Event.Effect

	require.NoError(t, e.ResolveCrisis(ctx, 1))
	f, r := e.Ledger.Balances()
	assert.Equal(t, max(0, 50000+effect.Funding), f)
	assert.Equal(t, max(0, effect.Research), r)
	assert.Nil(t, e.PendingCrisisView())

	err := e.ResolveCrisis(ctx, 0)
	assert.ErrorIs(t, err, ErrNoPendingCrisis)
	f2, r2 := e.Ledger.Balances()
	assert.Equal(t, f, f2, "a resolved crisis cannot be re-applied")
	assert.Equal(t, r, r2)
}

func TestResolveCrisis_OutOfRangeIndexStillResolves(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(4, crisisEveryTick)
	e.crisisTimer = 0
	e.Tick(ctx)
	require.NotNil(t, e.PendingCrisisView())

	require.NoError(t, e.ResolveCrisis(ctx, 99))
	assert.Nil(t, e.PendingCrisisView())
}

func TestCrisis_NotPersisted(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newEngineForTest(5, crisisEveryTick)
	e.crisisTimer = 0
	e.Tick(ctx)
	require.NotNil(t, e.PendingCrisisView())

	st, err := e.CaptureState(ctx)
	require.NoError(t, err)
	require.NoError(t, e.Restore(ctx, st))
	assert.Nil(t, e.PendingCrisisView(), "crises do not survive a restart")
}
