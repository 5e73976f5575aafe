package saga

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal struct{ entries []string }

func (j *journal) step(name string, doErr, undoErr error) Step {
	return Step{
		Name: name,
		Do: func(context.Context) error {
			j.entries = append(j.entries, "do:"+name)
			return doErr
		},
		Compensate: func(context.Context) error {
			j.entries = append(j.entries, "undo:"+name)
			return undoErr
		},
	}
}

func TestRun_AllStepsSucceed(t *testing.T) {
	j := &journal{}
	err := Run(context.Background(), zerolog.Nop(), "create", []Step{
		j.step("a", nil, nil),
		j.step("b", nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"do:a", "do:b"}, j.entries)
}

func TestRun_CompensatesInReverse(t *testing.T) {
	j := &journal{}
	boom := errors.New("boom")

	err := Run(context.Background(), zerolog.Nop(), "create", []Step{
		j.step("a", nil, nil),
		j.step("b", nil, nil),
		j.step("c", boom, nil),
		j.step("d", nil, nil),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"do:a", "do:b", "do:c", "undo:b", "undo:a"}, j.entries)

	se, ok := AsStepError(err)
	require.True(t, ok)
	assert.Equal(t, "c", se.Step)
	assert.Equal(t, []string{"b", "a"}, se.Compensated)
	assert.True(t, se.Clean())
}

func TestRun_SkipsIrreversibleSteps(t *testing.T) {
	j := &journal{}
	irreversible := j.step("delete", nil, nil)
	irreversible.Compensate = nil

	err := Run(context.Background(), zerolog.Nop(), "cancel", []Step{
		j.step("a", nil, nil),
		irreversible,
		j.step("cas", errors.New("down"), nil),
	})

	require.Error(t, err)
	assert.Equal(t, []string{"do:a", "do:delete", "do:cas", "undo:a"}, j.entries)
}

func TestRun_CompensationFailureIsReportedAndLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	j := &journal{}
	undoErr := errors.New("undo failed")

	err := Run(context.Background(), log, "invest", []Step{
		j.step("insert", nil, undoErr),
		j.step("ledger", errors.New("ledger down"), nil),
	})

	se, ok := AsStepError(err)
	require.True(t, ok)
	assert.False(t, se.Clean())
	assert.ErrorIs(t, se.CompensationErrs["insert"], undoErr)
	assert.Empty(t, se.Compensated)
	assert.Contains(t, buf.String(), "compensation failed")
	assert.Contains(t, buf.String(), `"step":"insert"`)
	assert.Contains(t, err.Error(), "1 compensation(s) failed")
}

func TestRun_CompensationIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var undoCtxErr error

	err := Run(ctx, zerolog.Nop(), "create", []Step{
		{
			Name: "insert",
			Do:   func(context.Context) error { return nil },
			Compensate: func(c context.Context) error {
				undoCtxErr = c.Err()
				return nil
			},
		},
		{
			Name: "cas",
			Do: func(context.Context) error {
				cancel()
				return context.Canceled
			},
		},
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, undoCtxErr)
}
